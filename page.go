package raceresults

import (
	"context"
	"time"
)

// Page represents a snapshot of one fetched results page.
type Page struct {
	ID          string    `json:"id"`
	Year        int       `json:"year"`
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.Year == 0 {
		return Errorf(EINVALID, "page year required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "page content required")
	}
	return nil
}

// PageService persists page snapshots so later runs can tell whether a
// page changed since it was last processed.
type PageService interface {
	// SavePage stores a snapshot, replacing any prior snapshot for the
	// same year.
	SavePage(ctx context.Context, page *Page) error

	// FindPageByYear retrieves the stored snapshot for a year.
	// Returns ENOTFOUND if no snapshot exists.
	FindPageByYear(ctx context.Context, year int) (*Page, error)

	// UnchangedPage reports whether the stored snapshot for the year has
	// the same content hash as the given content. Returns false if no
	// snapshot exists.
	UnchangedPage(ctx context.Context, year int, content string) (bool, error)
}
