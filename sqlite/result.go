package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/raceresults"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ raceresults.ResultService = (*ResultService)(nil)

// ResultService implements raceresults.ResultService using SQLite.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// CreateResults stores a batch of results for one event year, replacing
// any previously stored rows for that year in a single transaction.
func (s *ResultService) CreateResults(ctx context.Context, year int, results []*raceresults.Result) error {
	for _, result := range results {
		if err := result.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE year = ?`, year); err != nil {
		return err
	}

	for _, result := range results {
		result.ID = uuid.New().String()

		_, err := tx.ExecContext(ctx, `
			INSERT INTO results (id, year, place, name, team, bib_no, age, gender, age_group, total_time, pace, time_seconds, minutes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, result.ID, result.Year, result.Place, result.Name, result.Team, result.BibNo,
			result.Age, result.Gender, result.AgeGroup, result.TotalTime, result.Pace,
			int64(result.Time/time.Second), result.Minutes)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindResults retrieves results matching the filter, ordered ascending
// by finish time unless the filter asks for place order.
func (s *ResultService) FindResults(ctx context.Context, filter raceresults.ResultFilter) ([]*raceresults.Result, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, year, place, name, team, bib_no, age, gender, age_group, total_time, pace, time_seconds, minutes FROM results WHERE 1=1")

	if filter.Year != nil {
		query.WriteString(" AND year = ?")
		args = append(args, *filter.Year)
	}

	switch filter.SortBy {
	case raceresults.SortByPlace:
		query.WriteString(" ORDER BY year, place")
	default:
		query.WriteString(" ORDER BY time_seconds, place")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*raceresults.Result
	for rows.Next() {
		var result raceresults.Result
		var seconds int64

		if err := rows.Scan(&result.ID, &result.Year, &result.Place, &result.Name,
			&result.Team, &result.BibNo, &result.Age, &result.Gender, &result.AgeGroup,
			&result.TotalTime, &result.Pace, &seconds, &result.Minutes); err != nil {
			return nil, err
		}

		result.Time = time.Duration(seconds) * time.Second
		results = append(results, &result)
	}

	return results, rows.Err()
}

// DeleteResultsByYear removes all results for a year.
func (s *ResultService) DeleteResultsByYear(ctx context.Context, year int) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE year = ?`, year)
	return err
}
