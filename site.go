package parkscout

import (
	"context"
	"fmt"
)

// Site is a single national site record scraped from a detail page.
// All fields are plain strings; absent values are empty, never null.
type Site struct {
	// Free-text classification, e.g. "National Park". Some sites have
	// a blank category.
	Category string `json:"category"`

	// Display name, e.g. "Isle Royale".
	Name string `json:"name"`

	// Combined "city, state" string, e.g. "Houghton, MI".
	Address string `json:"address"`

	// Postal code, format varies and is not validated,
	// e.g. "49931" or "82190-0168".
	Zipcode string `json:"zipcode"`

	// Phone number with the leading formatting character stripped.
	Phone string `json:"phone"`
}

// Info returns the site's display string. It doubles as the nearby-places
// cache key, so it deliberately excludes the phone field: two sites with
// identical name, category, address, and zipcode collide.
func (s *Site) Info() string {
	return fmt.Sprintf("%s (%s): %s %s", s.Name, s.Category, s.Address, s.Zipcode)
}

// SiteService returns the sites belonging to a state directory page.
type SiteService interface {
	// SitesForState returns the ordered site list for a state page URL,
	// from cache when present, otherwise from the network.
	SitesForState(ctx context.Context, stateURL string) ([]Site, error)
}

// SiteParser extracts site data from nps.gov markup.
// Implementations hide the element selection details.
type SiteParser interface {
	// ParseSiteLinks returns the absolute detail-page URL for every site
	// entry on a state directory page.
	ParseSiteLinks(html, baseURL string) ([]string, error)

	// ParseSiteDetail builds a Site from one site detail page.
	ParseSiteDetail(html string) (*Site, error)
}
