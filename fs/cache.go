// Package fs persists cache maps as on-disk JSON documents.
package fs

import (
	"encoding/json"
	"os"
)

// Cache mirrors an in-memory string-keyed map as a single JSON document
// on disk. The document is loaded once, mutated in memory by the caller,
// and rewritten wholesale on every update. Writes are not atomic; a file
// corrupted by a crash mid-write is treated as an absent cache on the
// next load and rebuilt from the network.
type Cache[V any] struct {
	path string
}

// NewCache creates a Cache backed by the document at path.
// The file does not need to exist yet.
func NewCache[V any](path string) *Cache[V] {
	return &Cache[V]{path: path}
}

// Path returns the location of the backing document.
func (c *Cache[V]) Path() string {
	return c.path
}

// Load reads and decodes the backing document. Any failure (missing
// file, malformed JSON, wrong shape) yields an empty map, not an error:
// an unreadable cache is an absent cache.
func (c *Cache[V]) Load() map[string]V {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return map[string]V{}
	}

	var m map[string]V
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return map[string]V{}
	}
	return m
}

// Save serializes m and overwrites the backing document unconditionally.
func (c *Cache[V]) Save(m map[string]V) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}
