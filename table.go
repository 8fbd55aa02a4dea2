package raceresults

// ExpectedColumns is the width of the results schema: Place, Name, Team,
// Bib No, Age, Gender, Age Group, Total Time, Pace.
const ExpectedColumns = 9

// Row is an ordered list of whitespace-trimmed cell texts from a single
// table row. Section-title rows have one cell; header and data rows have
// the full schema width.
type Row []string

// Equal reports whether both rows hold identical cell text in every position.
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Table holds the cleaned contents of one results table: the discovered
// header row and the data rows that match its width, in document order.
type Table struct {
	Header Row
	Rows   []Row
}

// Records zips each data row against the header, producing one map of
// column name to cell text per row, in document order.
func (t *Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(map[string]string, len(t.Header))
		for i, name := range t.Header {
			record[name] = row[i]
		}
		records = append(records, record)
	}
	return records
}

// TableExtractor extracts the results table from one page of raw markup.
//
// Implementations locate the first table in the page, collect one Row of
// trimmed cell texts per table row in document order, take the first row
// of the expected width as the header, and keep every row of the same
// width that is not element-wise equal to the header. The source pages
// repeat the header periodically and interleave one-cell section titles;
// both are dropped. Header duplicates are matched by cell text, not by
// position, so a data row that happened to repeat the header verbatim
// would be dropped too; this mirrors the upstream dataset's behavior.
//
// Returns ENOTFOUND if the page contains no table, or no row of the
// expected width from which to take a header.
type TableExtractor interface {
	Extract(html string) (*Table, error)
}
