package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/raceresults"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ raceresults.PageService = (*PageService)(nil)

// PageService implements raceresults.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// SavePage stores a snapshot, replacing any prior snapshot for the year.
func (s *PageService) SavePage(ctx context.Context, page *raceresults.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	page.ContentHash = hashContent(page.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, year, url, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET
			url = excluded.url,
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, page.ID, page.Year, page.URL, page.Content, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPageByYear retrieves the stored snapshot for a year.
func (s *PageService) FindPageByYear(ctx context.Context, year int) (*raceresults.Page, error) {
	var page raceresults.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, year, url, content, content_hash, fetched_at
		FROM pages
		WHERE year = ?
	`, year).Scan(&page.ID, &page.Year, &page.URL, &page.Content, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, raceresults.Errorf(raceresults.ENOTFOUND, "page for year %d not found", year)
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &page, nil
}

// UnchangedPage reports whether the stored snapshot for the year has the
// same content hash as the given content.
func (s *PageService) UnchangedPage(ctx context.Context, year int, content string) (bool, error) {
	var stored string

	err := s.db.QueryRowContext(ctx, `
		SELECT content_hash FROM pages WHERE year = ?
	`, year).Scan(&stored)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return stored == hashContent(content), nil
}
