// Package goquery provides a goquery-based implementation of
// raceresults.TableExtractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/raceresults"
)

// Ensure Extractor implements raceresults.TableExtractor at compile time.
var _ raceresults.TableExtractor = (*Extractor)(nil)

// Extractor extracts the results table from page HTML.
type Extractor struct {
	columns int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithColumns overrides the expected schema width.
// Defaults to raceresults.ExpectedColumns.
func WithColumns(n int) Option {
	return func(e *Extractor) {
		e.columns = n
	}
}

// NewExtractor creates a new goquery-based Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		columns: raceresults.ExpectedColumns,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the page and returns the cleaned results table.
//
// The first table in the page is taken as the results table; the source
// pages contain exactly one. The header is the first row whose cell
// count matches the schema width. Every other row of that width is kept
// in document order unless its cells are element-wise equal to the
// header, which drops both the header itself and the copies of it the
// source re-emits between sections. Rows of any other width (section
// titles are a single cell) are dropped regardless of content.
func (e *Extractor) Extract(html string) (*raceresults.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, raceresults.Errorf(raceresults.EINVALID, "failed to parse HTML: %v", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, raceresults.Errorf(raceresults.ENOTFOUND, "no table found in page")
	}

	var rows []raceresults.Row
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row raceresults.Row
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, row)
	})

	var header raceresults.Row
	for _, row := range rows {
		if len(row) == e.columns {
			header = row
			break
		}
	}
	if header == nil {
		return nil, raceresults.Errorf(raceresults.ENOTFOUND, "no row with %d columns found", e.columns)
	}

	result := &raceresults.Table{Header: header}
	for _, row := range rows {
		if len(row) != e.columns {
			continue
		}
		if row.Equal(header) {
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}
