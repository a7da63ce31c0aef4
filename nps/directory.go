// Package nps implements the directory and site list services over the
// nps.gov HTML pages, coordinating each fetch with its on-disk cache.
package nps

import (
	"context"
	"log/slog"

	"github.com/award/parkscout"
	"github.com/award/parkscout/fs"
)

// DefaultBaseURL is the origin of the directory site. Relative hrefs in
// the markup are resolved against it.
const DefaultBaseURL = "https://www.nps.gov"

// Ensure DirectoryService implements parkscout.DirectoryService at compile time.
var _ parkscout.DirectoryService = (*DirectoryService)(nil)

// DirectoryService maps state names to their nps.gov directory pages.
// The state map is loaded from the cache document on first use, fetched
// from the network only when the cache is empty, and never mutated after
// it has been built.
type DirectoryService struct {
	Fetcher parkscout.Fetcher
	Parser  parkscout.DirectoryParser
	Cache   *fs.Cache[string]
	Logger  *slog.Logger

	// BaseURL defaults to DefaultBaseURL when empty.
	BaseURL string

	states map[string]string
}

// StateMap returns the lowercase state name to URL map.
func (s *DirectoryService) StateMap(ctx context.Context) (map[string]string, error) {
	if s.states == nil {
		s.states = s.Cache.Load()
	}
	if len(s.states) > 0 {
		s.log().Debug("using cached state directory", "states", len(s.states))
		return s.states, nil
	}

	indexURL := s.baseURL() + "/index.htm"
	s.log().Info("fetching state directory", "url", indexURL)

	html, err := s.Fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	states, err := s.Parser.ParseStateIndex(html, s.baseURL())
	if err != nil {
		return nil, err
	}

	s.states = states
	if err := s.Cache.Save(s.states); err != nil {
		return nil, err
	}
	return s.states, nil
}

func (s *DirectoryService) baseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return DefaultBaseURL
}

func (s *DirectoryService) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
