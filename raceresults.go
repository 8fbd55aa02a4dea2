// Package raceresults turns static race-results pages into a cleaned,
// typed dataset. It fetches one page per event year, extracts the single
// results table from each page, drops structural noise (section titles,
// repeated header rows), normalizes finish times, and persists the
// combined dataset for later analysis.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, excelize/).
package raceresults
