package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/award/parkscout"
)

// DefaultSearchURL is the MapQuest radius search endpoint.
const DefaultSearchURL = "https://www.mapquestapi.com/search/v2/radius"

// Fixed search parameters. The radius is in miles.
const (
	DefaultRadius     = 10
	DefaultMaxMatches = 10
)

// Ensure PlaceSearcher implements parkscout.PlaceSearcher at compile time.
var _ parkscout.PlaceSearcher = (*PlaceSearcher)(nil)

// PlaceSearcher queries the MapQuest radius search API for points of
// interest around an origin address. Responses are decoded only as far
// as "is this JSON" — their shape is deliberately not validated, so API
// error payloads flow through to the caller unchanged.
type PlaceSearcher struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	radius     int
	maxMatches int
}

// SearchOption configures a PlaceSearcher.
type SearchOption func(*PlaceSearcher)

// WithSearchURL overrides the API endpoint. Used in tests.
func WithSearchURL(u string) SearchOption {
	return func(s *PlaceSearcher) {
		s.baseURL = u
	}
}

// WithSearchTimeout sets the timeout for API requests.
func WithSearchTimeout(d time.Duration) SearchOption {
	return func(s *PlaceSearcher) {
		s.client.Timeout = d
	}
}

// NewPlaceSearcher creates a PlaceSearcher authenticated with apiKey.
func NewPlaceSearcher(apiKey string, opts ...SearchOption) *PlaceSearcher {
	s := &PlaceSearcher{
		client:     &http.Client{Timeout: DefaultFetchTimeout},
		baseURL:    DefaultSearchURL,
		apiKey:     apiKey,
		radius:     DefaultRadius,
		maxMatches: DefaultMaxMatches,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search issues one radius search centered on origin and returns the raw
// decoded JSON response.
func (s *PlaceSearcher) Search(ctx context.Context, origin string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("radius", strconv.Itoa(s.radius))
	q.Set("maxMatches", strconv.Itoa(s.maxMatches))
	q.Set("ambiguities", "ignore")
	q.Set("outFormat", "json")
	q.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, parkscout.Errorf(parkscout.EINVALID, "invalid search request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, parkscout.Errorf(parkscout.EUNAVAILABLE, "radius search for %q failed: %v", origin, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, parkscout.Errorf(parkscout.EUNAVAILABLE, "radius search for %q failed: HTTP %d", origin, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, parkscout.Errorf(parkscout.EUNAVAILABLE, "reading search response failed: %v", err)
	}

	if !json.Valid(body) {
		return nil, parkscout.Errorf(parkscout.EUPSTREAM, "radius search returned invalid JSON: source format changed")
	}

	return json.RawMessage(body), nil
}
