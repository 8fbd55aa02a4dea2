package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/raceresults"
	rrcsv "github.com/fwojciec/raceresults/csvutil"
	rrexcel "github.com/fwojciec/raceresults/excelize"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	results, err := deps.Results.FindResults(deps.Ctx, raceresults.ResultFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", raceresults.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "xlsx":
		out := c.Out
		if out == "" {
			out = "results.xlsx"
		}
		if err := rrexcel.NewWriter(out).WriteResults(deps.Ctx, results); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d results to %s\n", len(results), out)
		return nil

	default:
		var w io.Writer = deps.Stdout
		if c.Out != "" {
			f, err := os.Create(c.Out)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		if err := rrcsv.NewWriter(w).WriteResults(deps.Ctx, results); err != nil {
			return err
		}
		if c.Out != "" {
			fmt.Fprintf(deps.Stdout, "Wrote %d results to %s\n", len(results), c.Out)
		}
		return nil
	}
}
