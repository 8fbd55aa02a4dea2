package mock

import (
	"context"

	"github.com/fwojciec/raceresults"
)

var _ raceresults.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter is a mock implementation of raceresults.DatasetWriter.
type DatasetWriter struct {
	WriteResultsFn func(ctx context.Context, results []*raceresults.Result) error
}

func (w *DatasetWriter) WriteResults(ctx context.Context, results []*raceresults.Result) error {
	return w.WriteResultsFn(ctx, results)
}
