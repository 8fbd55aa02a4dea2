package main

import (
	"fmt"

	"github.com/fwojciec/raceresults"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := raceresults.ResultFilter{Limit: c.Limit}
	if c.Year != 0 {
		filter.Year = &c.Year
	}

	results, err := deps.Results.FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", raceresults.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results stored. Use 'raceresults fetch' to scrape some.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%4d  %-24s  %8s  %d\n", r.Place, r.Name, r.TotalTime, r.Year)
	}

	return nil
}
