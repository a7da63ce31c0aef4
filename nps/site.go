package nps

import (
	"context"
	"log/slog"

	"github.com/award/parkscout"
	"github.com/award/parkscout/fs"
)

// Ensure SiteService implements parkscout.SiteService at compile time.
var _ parkscout.SiteService = (*SiteService)(nil)

// SiteService returns the national sites belonging to a state page. The
// cache key is the exact state page URL; a hit returns the full cached
// list without any network access, even if the real-world data has since
// changed (caches are permanent until manually deleted).
type SiteService struct {
	Fetcher parkscout.Fetcher
	Parser  parkscout.SiteParser
	Cache   *fs.Cache[[]parkscout.Site]
	Logger  *slog.Logger

	// BaseURL defaults to DefaultBaseURL when empty.
	BaseURL string

	sites map[string][]parkscout.Site
}

// SitesForState returns the ordered site list for stateURL. On a cache
// miss it fetches the state page, then fetches and parses each site's
// detail page exactly once, and persists the result before returning.
// Any fetch or parse failure aborts the miss path with the cache
// untouched.
func (s *SiteService) SitesForState(ctx context.Context, stateURL string) ([]parkscout.Site, error) {
	if s.sites == nil {
		s.sites = s.Cache.Load()
	}
	if sites, ok := s.sites[stateURL]; ok {
		s.log().Debug("using cached site list", "state", stateURL, "sites", len(sites))
		return sites, nil
	}

	s.log().Info("fetching site list", "state", stateURL)

	html, err := s.Fetcher.Fetch(ctx, stateURL)
	if err != nil {
		return nil, err
	}
	links, err := s.Parser.ParseSiteLinks(html, s.baseURL())
	if err != nil {
		return nil, err
	}

	sites := make([]parkscout.Site, 0, len(links))
	for _, link := range links {
		page, err := s.Fetcher.Fetch(ctx, link)
		if err != nil {
			return nil, err
		}
		site, err := s.Parser.ParseSiteDetail(page)
		if err != nil {
			return nil, err
		}
		sites = append(sites, *site)
	}

	s.sites[stateURL] = sites
	if err := s.Cache.Save(s.sites); err != nil {
		return nil, err
	}
	return sites, nil
}

func (s *SiteService) baseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return DefaultBaseURL
}

func (s *SiteService) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
