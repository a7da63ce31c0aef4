package parkscout

import "context"

// DirectoryService maps state names to their directory page URLs.
type DirectoryService interface {
	// StateMap returns the lowercase state name to absolute URL map.
	// The map is built once per process, from cache or network, and is
	// not mutated afterwards.
	StateMap(ctx context.Context) (map[string]string, error)
}

// DirectoryParser extracts the state navigation links from the directory
// site's index page markup.
type DirectoryParser interface {
	// ParseStateIndex builds the state map from the index page HTML.
	// Relative hrefs are resolved against baseURL.
	ParseStateIndex(html, baseURL string) (map[string]string, error)
}
