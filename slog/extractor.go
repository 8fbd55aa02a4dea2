package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/raceresults"
)

// Ensure LoggingExtractor implements raceresults.TableExtractor.
var _ raceresults.TableExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TableExtractor with debug logging.
type LoggingExtractor struct {
	next   raceresults.TableExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next raceresults.TableExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (table *raceresults.Table, err error) {
	defer func(begin time.Time) {
		rows, columns := 0, 0
		if table != nil {
			rows = len(table.Rows)
			columns = len(table.Header)
		}
		e.logger.Info("table extraction",
			"rows", rows,
			"columns", columns,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
