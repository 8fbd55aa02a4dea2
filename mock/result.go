package mock

import (
	"context"

	"github.com/fwojciec/raceresults"
)

var _ raceresults.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of raceresults.ResultService.
type ResultService struct {
	CreateResultsFn       func(ctx context.Context, year int, results []*raceresults.Result) error
	FindResultsFn         func(ctx context.Context, filter raceresults.ResultFilter) ([]*raceresults.Result, error)
	DeleteResultsByYearFn func(ctx context.Context, year int) error
}

func (s *ResultService) CreateResults(ctx context.Context, year int, results []*raceresults.Result) error {
	return s.CreateResultsFn(ctx, year, results)
}

func (s *ResultService) FindResults(ctx context.Context, filter raceresults.ResultFilter) ([]*raceresults.Result, error) {
	return s.FindResultsFn(ctx, filter)
}

func (s *ResultService) DeleteResultsByYear(ctx context.Context, year int) error {
	return s.DeleteResultsByYearFn(ctx, year)
}
