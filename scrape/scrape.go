// Package scrape orchestrates the per-year fetch and extract pipeline.
package scrape

import (
	"context"
	"fmt"
	"sort"

	"github.com/fwojciec/raceresults"
)

// SkippedRow identifies a table row that failed field parsing and was
// left out of the combined dataset.
type SkippedRow struct {
	URL   string
	Year  int
	Index int
	Err   error
}

// RunResult holds everything one scrape run produced: the combined
// dataset sorted by finish time, the raw page snapshots, and any rows
// skipped for failing field parsing.
type RunResult struct {
	Results []*raceresults.Result
	Pages   []*raceresults.Page
	Skipped []SkippedRow
}

// ResultsByYear returns the subset of results tagged with the year,
// preserving order.
func (r *RunResult) ResultsByYear(year int) []*raceresults.Result {
	var out []*raceresults.Result
	for _, result := range r.Results {
		if result.Year == year {
			out = append(out, result)
		}
	}
	return out
}

// Scraper runs the pipeline: one page per event year, fetched and
// processed to completion before the next begins.
type Scraper struct {
	Fetcher   raceresults.Fetcher
	Extractor raceresults.TableExtractor
	BaseURL   string
}

// Run fetches and extracts each year's results page in order and returns
// the combined dataset sorted ascending by finish time. The run is a
// pure fold: each page yields an immutable batch, and batches are
// concatenated into the returned RunResult.
//
// A fetch or extract failure aborts the run. A row that fails field
// parsing is recorded in Skipped and the rest of the page is kept, so
// one malformed row does not discard a whole year.
func (s *Scraper) Run(ctx context.Context, years []int) (*RunResult, error) {
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = raceresults.DefaultBaseURL
	}

	out := &RunResult{}
	for _, year := range years {
		url := raceresults.PageURL(baseURL, year)

		html, err := s.Fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", url, err)
		}
		out.Pages = append(out.Pages, &raceresults.Page{
			Year:    year,
			URL:     url,
			Content: html,
		})

		table, err := s.Extractor.Extract(html)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", url, err)
		}

		for i, row := range table.Rows {
			result, err := raceresults.NewResult(table.Header, row, year)
			if err != nil {
				out.Skipped = append(out.Skipped, SkippedRow{URL: url, Year: year, Index: i, Err: err})
				continue
			}
			out.Results = append(out.Results, result)
		}
	}

	sort.SliceStable(out.Results, func(i, j int) bool {
		return out.Results[i].Time < out.Results[j].Time
	})

	return out, nil
}
