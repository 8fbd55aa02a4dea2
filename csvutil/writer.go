// Package csvutil writes the cleaned dataset as CSV.
package csvutil

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/fwojciec/raceresults"
	"github.com/jszwec/csvutil"
)

// Ensure Writer implements raceresults.DatasetWriter at compile time.
var _ raceresults.DatasetWriter = (*Writer)(nil)

// Writer writes results as CSV rows with a single header line, columns
// named per the csv tags on raceresults.Result.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteResults encodes the results in the order given. The finish time
// is rendered in Go duration notation (e.g. "20m20s") so the column
// stays readable outside this tool.
func (w *Writer) WriteResults(ctx context.Context, results []*raceresults.Result) error {
	cw := csv.NewWriter(w.w)
	enc := csvutil.NewEncoder(cw)
	enc.Register(func(d time.Duration) ([]byte, error) {
		return []byte(d.String()), nil
	})

	for _, result := range results {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(result); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
