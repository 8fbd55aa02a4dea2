// Package excelize writes the cleaned dataset as an XLSX workbook.
package excelize

import (
	"context"

	"github.com/fwojciec/raceresults"
	"github.com/xuri/excelize/v2"
)

// Ensure Writer implements raceresults.DatasetWriter at compile time.
var _ raceresults.DatasetWriter = (*Writer)(nil)

// SheetName is the name of the single worksheet in the output workbook.
const SheetName = "Results"

// Writer writes results to an XLSX file with a frozen header row.
type Writer struct {
	path string
}

// NewWriter creates a Writer that saves the workbook at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteResults writes the results in the order given, one row per
// result, with the same column order as the CSV output.
func (w *Writer) WriteResults(ctx context.Context, results []*raceresults.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := []any{"Place", "Name", "Team", "Bib No", "Age", "Gender", "Age Group", "Total Time", "Pace", "Year", "Time", "Minutes"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i, result := range results {
		if err := ctx.Err(); err != nil {
			return err
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []any{
			result.Place, result.Name, result.Team, result.BibNo, result.Age,
			result.Gender, result.AgeGroup, result.TotalTime, result.Pace,
			result.Year, result.Time.String(), result.Minutes,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return f.SaveAs(w.path)
}
