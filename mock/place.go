package mock

import (
	"context"
	"encoding/json"

	"github.com/award/parkscout"
)

var _ parkscout.NearbyService = (*NearbyService)(nil)

// NearbyService is a mock implementation of parkscout.NearbyService.
type NearbyService struct {
	NearbyPlacesFn func(ctx context.Context, site *parkscout.Site) (json.RawMessage, error)
}

func (s *NearbyService) NearbyPlaces(ctx context.Context, site *parkscout.Site) (json.RawMessage, error) {
	return s.NearbyPlacesFn(ctx, site)
}

var _ parkscout.PlaceSearcher = (*PlaceSearcher)(nil)

// PlaceSearcher is a mock implementation of parkscout.PlaceSearcher.
type PlaceSearcher struct {
	SearchFn func(ctx context.Context, origin string) (json.RawMessage, error)
}

func (s *PlaceSearcher) Search(ctx context.Context, origin string) (json.RawMessage, error) {
	return s.SearchFn(ctx, origin)
}
