package raceresults

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is where the per-year results pages live.
const DefaultBaseURL = "http://www.hubertiming.com/results"

// DefaultYears are the event years fetched when none are given.
var DefaultYears = []int{2010, 2011}

// PageURL returns the URL of the results page for a year. Pages follow
// a fixed pattern keyed by two-digit year, e.g. .../eo10.html for 2010.
func PageURL(baseURL string, year int) string {
	return fmt.Sprintf("%s/eo%02d.html", strings.TrimSuffix(baseURL, "/"), year%100)
}
