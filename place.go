package parkscout

import (
	"context"
	"encoding/json"
	"fmt"
)

// Place is one point of interest from a radius search response.
// Fields may be empty; Format substitutes placeholders at render time.
type Place struct {
	Name     string
	Category string
	Address  string
	City     string
}

// Format renders the place as a single display line, substituting a
// literal placeholder for any absent field.
func (p Place) Format() string {
	name := p.Name
	if name == "" {
		name = "no name"
	}
	category := p.Category
	if category == "" {
		category = "no category"
	}
	address := p.Address
	if address == "" {
		address = "no address"
	}
	city := p.City
	if city == "" {
		city = "no city"
	}
	return fmt.Sprintf("%s (%s): %s, %s", name, category, address, city)
}

// NearbyService returns points of interest near a site.
type NearbyService interface {
	// NearbyPlaces returns the raw search API response for the site,
	// from cache when present, otherwise from the network. The response
	// shape is not validated; malformed responses are returned as-is.
	NearbyPlaces(ctx context.Context, site *Site) (json.RawMessage, error)
}

// PlaceSearcher queries a geolocation search API for points of interest
// around an origin address.
type PlaceSearcher interface {
	Search(ctx context.Context, origin string) (json.RawMessage, error)
}
