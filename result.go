package raceresults

import (
	"context"
	"strconv"
	"time"
)

// Column names as they appear in the source header row.
const (
	ColPlace     = "Place"
	ColName      = "Name"
	ColTeam      = "Team"
	ColBibNo     = "Bib No"
	ColAge       = "Age"
	ColGender    = "Gender"
	ColAgeGroup  = "Age Group"
	ColTotalTime = "Total Time"
	ColPace      = "Pace"
)

// Result represents one cleaned finisher row, tagged with its event year
// and carrying the normalized finish time.
type Result struct {
	ID        string        `json:"id" csv:"-"`
	Place     int           `json:"place" csv:"Place"`
	Name      string        `json:"name" csv:"Name"`
	Team      string        `json:"team" csv:"Team"`
	BibNo     int           `json:"bibNo" csv:"Bib No"`
	Age       int           `json:"age" csv:"Age"`
	Gender    string        `json:"gender" csv:"Gender"`
	AgeGroup  string        `json:"ageGroup" csv:"Age Group"`
	TotalTime string        `json:"totalTime" csv:"Total Time"`
	Pace      string        `json:"pace" csv:"Pace"`
	Year      int           `json:"year" csv:"Year"`
	Time      time.Duration `json:"time" csv:"Time"`
	Minutes   float64       `json:"minutes" csv:"Minutes"`
}

// Validate returns an error if the result contains invalid fields.
func (r *Result) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "result name required")
	}
	if r.Year == 0 {
		return Errorf(EINVALID, "result year required")
	}
	if r.Time <= 0 {
		return Errorf(EINVALID, "result finish time required")
	}
	return nil
}

// NewResult builds a typed Result from one cleaned table row, looking up
// fields by the column names discovered in the header. Integer fields
// that fail to parse and a Total Time not in MM:SS form surface as
// EINVALID, so callers can skip the one bad row instead of discarding
// the whole page.
func NewResult(header, row Row, year int) (*Result, error) {
	if len(row) != len(header) {
		return nil, Errorf(EINVALID, "row has %d cells, header has %d", len(row), len(header))
	}

	fields := make(map[string]string, len(header))
	for i, name := range header {
		fields[name] = row[i]
	}

	place, err := parseIntField(fields, ColPlace)
	if err != nil {
		return nil, err
	}
	bibNo, err := parseIntField(fields, ColBibNo)
	if err != nil {
		return nil, err
	}
	age, err := parseIntField(fields, ColAge)
	if err != nil {
		return nil, err
	}
	finish, err := ParseFinishTime(fields[ColTotalTime])
	if err != nil {
		return nil, err
	}

	return &Result{
		Place:     place,
		Name:      fields[ColName],
		Team:      fields[ColTeam],
		BibNo:     bibNo,
		Age:       age,
		Gender:    fields[ColGender],
		AgeGroup:  fields[ColAgeGroup],
		TotalTime: fields[ColTotalTime],
		Pace:      fields[ColPace],
		Year:      year,
		Time:      finish,
		Minutes:   FinishMinutes(finish),
	}, nil
}

func parseIntField(fields map[string]string, name string) (int, error) {
	v, err := strconv.Atoi(fields[name])
	if err != nil {
		return 0, Errorf(EINVALID, "invalid %s %q", name, fields[name])
	}
	return v, nil
}

// SortOrder represents the sort order for result queries.
type SortOrder string

// SortOrder constants for ResultFilter.
const (
	SortByTime  SortOrder = "time"
	SortByPlace SortOrder = "place"
)

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	Year *int `json:"year"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// SortBy defaults to SortByTime: ascending finish time across the
	// whole stored dataset.
	SortBy SortOrder `json:"sortBy"`
}

// ResultService represents a service for managing stored results.
type ResultService interface {
	// CreateResults stores a batch of results for one event year,
	// replacing any previously stored rows for that year.
	CreateResults(ctx context.Context, year int, results []*Result) error

	// FindResults retrieves results matching the filter, ordered per
	// filter.SortBy (ascending finish time by default).
	FindResults(ctx context.Context, filter ResultFilter) ([]*Result, error)

	// DeleteResultsByYear removes all results for a year.
	DeleteResultsByYear(ctx context.Context, year int) error
}

// DatasetWriter writes a cleaned result set to an output boundary
// (CSV file, spreadsheet, etc.).
type DatasetWriter interface {
	WriteResults(ctx context.Context, results []*Result) error
}
