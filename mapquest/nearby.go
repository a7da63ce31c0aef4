// Package mapquest implements the nearby-places service over the
// MapQuest radius search API, coordinating each search with its on-disk
// cache, and renders raw search responses into display records.
package mapquest

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/award/parkscout"
	"github.com/award/parkscout/fs"
)

// Ensure NearbyService implements parkscout.NearbyService at compile time.
var _ parkscout.NearbyService = (*NearbyService)(nil)

// NearbyService returns points of interest near a site. The cache key is
// the site's display string, recomputed from its fields at lookup time:
// two sites with identical name, category, address, and zipcode share an
// entry regardless of phone differences.
type NearbyService struct {
	Searcher parkscout.PlaceSearcher
	Cache    *fs.Cache[json.RawMessage]
	Logger   *slog.Logger

	places map[string]json.RawMessage
}

// NearbyPlaces returns the raw search response for the site, searching
// with the site's address as origin only when the cache has no entry.
func (s *NearbyService) NearbyPlaces(ctx context.Context, site *parkscout.Site) (json.RawMessage, error) {
	if s.places == nil {
		s.places = s.Cache.Load()
	}

	key := site.Info()
	if raw, ok := s.places[key]; ok {
		s.log().Debug("using cached nearby places", "site", key)
		return raw, nil
	}

	s.log().Info("fetching nearby places", "origin", site.Address)

	raw, err := s.Searcher.Search(ctx, site.Address)
	if err != nil {
		return nil, err
	}

	s.places[key] = raw
	if err := s.Cache.Save(s.places); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *NearbyService) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
