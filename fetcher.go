package raceresults

import "context"

// Fetcher retrieves raw page markup from URLs.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the page body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
