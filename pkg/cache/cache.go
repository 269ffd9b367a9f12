// Package cache stores filtered word lists between runs.
//
// Filtering a large system dictionary by minimum length and case folding is
// repeated on every run with the same inputs. A [Cache] keeps the filtered
// word list keyed by the dictionary's identity (path, size, modification
// time) and the filter settings, so repeat runs can skip the work.
//
// Three backends are provided:
//   - [FileCache]: files under the user cache directory, for CLI use
//   - [RedisCache]: a shared Redis server
//   - [NullCache]: caching disabled
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. The bool is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
