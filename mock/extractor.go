package mock

import "github.com/fwojciec/raceresults"

var _ raceresults.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of raceresults.TableExtractor.
type TableExtractor struct {
	ExtractFn func(html string) (*raceresults.Table, error)
}

func (e *TableExtractor) Extract(html string) (*raceresults.Table, error) {
	return e.ExtractFn(html)
}
