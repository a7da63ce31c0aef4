package mock

import (
	"context"

	"github.com/award/parkscout"
)

var _ parkscout.SiteService = (*SiteService)(nil)

// SiteService is a mock implementation of parkscout.SiteService.
type SiteService struct {
	SitesForStateFn func(ctx context.Context, stateURL string) ([]parkscout.Site, error)
}

func (s *SiteService) SitesForState(ctx context.Context, stateURL string) ([]parkscout.Site, error) {
	return s.SitesForStateFn(ctx, stateURL)
}

var _ parkscout.SiteParser = (*SiteParser)(nil)

// SiteParser is a mock implementation of parkscout.SiteParser.
type SiteParser struct {
	ParseSiteLinksFn  func(html, baseURL string) ([]string, error)
	ParseSiteDetailFn func(html string) (*parkscout.Site, error)
}

func (p *SiteParser) ParseSiteLinks(html, baseURL string) ([]string, error) {
	return p.ParseSiteLinksFn(html, baseURL)
}

func (p *SiteParser) ParseSiteDetail(html string) (*parkscout.Site, error) {
	return p.ParseSiteDetailFn(html)
}
