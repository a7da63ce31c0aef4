// Package http provides HTTP-based implementations of parkscout.Fetcher
// and parkscout.PlaceSearcher for the nps.gov directory and the MapQuest
// radius search API.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/award/parkscout"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements parkscout.Fetcher at compile time.
var _ parkscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using blocking GET requests.
// There is one fetch in flight at a time and no retries; a failed
// request surfaces as an EUNAVAILABLE error and leaves caches untouched.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", parkscout.Errorf(parkscout.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", parkscout.Errorf(parkscout.EUNAVAILABLE, "request to %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", parkscout.Errorf(parkscout.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", parkscout.Errorf(parkscout.EUNAVAILABLE, "reading response from %s failed: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
