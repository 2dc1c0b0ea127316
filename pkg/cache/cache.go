// Package cache stores derived generators, groups and circuits by content
// hash so repeated runs over the same graph skip the enumeration.
//
// Three backends implement [Cache]:
//   - [NullCache] never stores anything (caching disabled)
//   - [FileCache] keeps one JSON file per entry under a directory (CLI default)
//   - [RedisCache] keeps entries in Redis (shared between machines)
//
// Keys come from a [Keyer]. Keys are derived from the zero/non-zero pattern
// of the adjacency matrix, so two matrices that describe the same graph
// state share cache entries.
//
// Backends report transient failures wrapped with [Retryable]; callers may
// retry them with [RetryWithBackoff]. A cache failure never fails a
// computation: the pipeline logs it and recomputes.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes. Results are pure functions of their key, so they
// only expire to bound disk usage.
const (
	TTLGenerators = 30 * 24 * time.Hour
	TTLGroup      = 7 * 24 * time.Hour
	TTLCircuit    = 30 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (hit == false), not an error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}
