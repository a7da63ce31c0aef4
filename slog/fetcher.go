// Package slog provides logging decorators for parkscout interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/award/parkscout"
)

// Ensure Fetcher implements parkscout.Fetcher at compile time.
var _ parkscout.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a parkscout.Fetcher with per-request logging.
type Fetcher struct {
	next   parkscout.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next parkscout.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Debug("fetch",
		"url", url,
		"duration", time.Since(begin),
		"bytes", len(html),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
