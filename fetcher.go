package parkscout

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
