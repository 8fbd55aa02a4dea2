package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/raceresults"
	"github.com/fwojciec/raceresults/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scraper *scrape.Scraper
	Pages   raceresults.PageService
	Results raceresults.ResultService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string        `help:"Database path" default:"raceresults.db" env:"RACERESULTS_DB"`
	BaseURL string        `help:"Base URL for the results pages" default:"${default_base_url}"`
	Timeout time.Duration `help:"Fetch timeout per page" default:"10s"`
	Rate    float64       `help:"Fetch rate limit in requests per second" default:"1"`
	Verbose bool          `short:"v" help:"Log fetch and extraction details to stderr"`

	Fetch  FetchCmd  `cmd:"" help:"Fetch results pages and store the cleaned dataset"`
	Export ExportCmd `cmd:"" help:"Export stored results to CSV or XLSX"`
	List   ListCmd   `cmd:"" help:"List stored results in finish order"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Years []int `arg:"" optional:"" help:"Event years to fetch (default: 2010 2011)"`
	Force bool  `short:"f" help:"Store results even when the page is unchanged"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `help:"Output format" enum:"csv,xlsx" default:"csv"`
	Out    string `short:"o" help:"Output file (default: stdout for csv, results.xlsx for xlsx)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Year  int `help:"Limit to one event year"`
	Limit int `short:"n" default:"10" help:"Maximum number of rows to show"`
}
