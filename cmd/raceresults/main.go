package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/raceresults"
	"github.com/fwojciec/raceresults/goquery"
	rrhttp "github.com/fwojciec/raceresults/http"
	"github.com/fwojciec/raceresults/scrape"
	rrslog "github.com/fwojciec/raceresults/slog"
	"github.com/fwojciec/raceresults/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PageService   raceresults.PageService
	ResultService raceresults.ResultService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("raceresults"),
		kong.Description("Fetch race results pages and build a cleaned dataset"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"default_base_url": raceresults.DefaultBaseURL},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'raceresults --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set RACERESULTS_DB to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	m.PageService = sqlite.NewPageService(m.DB)
	m.ResultService = sqlite.NewResultService(m.DB)
	deps.Pages = m.PageService
	deps.Results = m.ResultService

	var fetcher raceresults.Fetcher = rrhttp.NewFetcher(
		rrhttp.WithTimeout(cli.Timeout),
		rrhttp.WithRequestsPerSecond(cli.Rate),
	)
	defer fetcher.Close()

	var extractor raceresults.TableExtractor = goquery.NewExtractor()

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = rrslog.NewLoggingFetcher(fetcher, logger)
		extractor = rrslog.NewLoggingExtractor(extractor, logger)
	}

	deps.Scraper = &scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: extractor,
		BaseURL:   cli.BaseURL,
	}

	return kongCtx.Run(deps)
}
