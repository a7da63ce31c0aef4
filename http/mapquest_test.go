package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/award/parkscout"
	pshttp "github.com/award/parkscout/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("sends the fixed search parameters", func(t *testing.T) {
		t.Parallel()

		var got map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = map[string]string{
				"origin":      r.URL.Query().Get("origin"),
				"radius":      r.URL.Query().Get("radius"),
				"maxMatches":  r.URL.Query().Get("maxMatches"),
				"ambiguities": r.URL.Query().Get("ambiguities"),
				"outFormat":   r.URL.Query().Get("outFormat"),
				"key":         r.URL.Query().Get("key"),
			}
			_, _ = w.Write([]byte(`{"searchResults": []}`))
		}))
		defer server.Close()

		searcher := pshttp.NewPlaceSearcher("test-key", pshttp.WithSearchURL(server.URL))

		raw, err := searcher.Search(context.Background(), "Houghton, MI")
		require.NoError(t, err)

		assert.JSONEq(t, `{"searchResults": []}`, string(raw))
		assert.Equal(t, map[string]string{
			"origin":      "Houghton, MI",
			"radius":      "10",
			"maxMatches":  "10",
			"ambiguities": "ignore",
			"outFormat":   "json",
			"key":         "test-key",
		}, got)
	})

	t.Run("returns API error payloads as-is", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"info": {"statuscode": 400, "messages": ["Illegal argument"]}}`))
		}))
		defer server.Close()

		searcher := pshttp.NewPlaceSearcher("test-key", pshttp.WithSearchURL(server.URL))

		raw, err := searcher.Search(context.Background(), "nowhere")
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Illegal argument")
	})

	t.Run("reports non-200 responses as unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		searcher := pshttp.NewPlaceSearcher("bad-key", pshttp.WithSearchURL(server.URL))

		_, err := searcher.Search(context.Background(), "Houghton, MI")
		require.Error(t, err)
		assert.Equal(t, parkscout.EUNAVAILABLE, parkscout.ErrorCode(err))
	})

	t.Run("reports invalid JSON as upstream failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>maintenance</html>"))
		}))
		defer server.Close()

		searcher := pshttp.NewPlaceSearcher("test-key", pshttp.WithSearchURL(server.URL))

		_, err := searcher.Search(context.Background(), "Houghton, MI")
		require.Error(t, err)
		assert.Equal(t, parkscout.EUPSTREAM, parkscout.ErrorCode(err))
	})
}
