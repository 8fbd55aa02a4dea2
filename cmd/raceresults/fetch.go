package main

import (
	"fmt"

	"github.com/fwojciec/raceresults"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	years := c.Years
	if len(years) == 0 {
		years = raceresults.DefaultYears
	}

	run, err := deps.Scraper.Run(deps.Ctx, years)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	for _, skipped := range run.Skipped {
		fmt.Fprintf(deps.Stderr, "skip %s row %d: %s\n",
			skipped.URL, skipped.Index, raceresults.ErrorMessage(skipped.Err))
	}

	for _, page := range run.Pages {
		if !c.Force {
			unchanged, err := deps.Pages.UnchangedPage(deps.Ctx, page.Year, page.Content)
			if err != nil {
				return err
			}
			if unchanged {
				fmt.Fprintf(deps.Stdout, "%d: page unchanged, skipping\n", page.Year)
				continue
			}
		}

		if err := deps.Pages.SavePage(deps.Ctx, page); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving page for %d: %s\n", page.Year, raceresults.ErrorMessage(err))
			return err
		}

		results := run.ResultsByYear(page.Year)
		if err := deps.Results.CreateResults(deps.Ctx, page.Year, results); err != nil {
			fmt.Fprintf(deps.Stderr, "error storing results for %d: %s\n", page.Year, raceresults.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "%d: stored %d results\n", page.Year, len(results))
	}

	return nil
}
