package mock

import (
	"context"

	"github.com/fwojciec/raceresults"
)

var _ raceresults.PageService = (*PageService)(nil)

// PageService is a mock implementation of raceresults.PageService.
type PageService struct {
	SavePageFn       func(ctx context.Context, page *raceresults.Page) error
	FindPageByYearFn func(ctx context.Context, year int) (*raceresults.Page, error)
	UnchangedPageFn  func(ctx context.Context, year int, content string) (bool, error)
}

func (s *PageService) SavePage(ctx context.Context, page *raceresults.Page) error {
	return s.SavePageFn(ctx, page)
}

func (s *PageService) FindPageByYear(ctx context.Context, year int) (*raceresults.Page, error) {
	return s.FindPageByYearFn(ctx, year)
}

func (s *PageService) UnchangedPage(ctx context.Context, year int, content string) (bool, error) {
	return s.UnchangedPageFn(ctx, year, content)
}
