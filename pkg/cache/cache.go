// Package cache provides caching for computed layouts and rendered
// artifacts. A schedule is cheap to parse, but layout touches every
// calendar day in the chart range and rendering PNG or PDF shells out
// to an external converter, so both stages store their results keyed
// by content hash.
//
// Two persistent implementations are provided: FileCache stores
// entries in a directory (the CLI default) and RedisCache shares
// entries across processes (the server default). NullCache disables
// caching entirely.
package cache

import (
	"context"
	"time"
)

// Default TTLs for the two cached stages.
const (
	// LayoutTTL applies to computed layouts.
	LayoutTTL = 7 * 24 * time.Hour

	// ArtifactTTL applies to rendered artifacts (SVG, PNG, PDF, JSON).
	ArtifactTTL = 24 * time.Hour
)

// Cache stores byte blobs under string keys.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves the data stored under key.
	// Returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less means the entry
	// never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
