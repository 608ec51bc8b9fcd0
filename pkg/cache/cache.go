// Package cache stores rendered artifacts so repeated renders of the same
// circuit skip Graphviz.
//
// Three backends implement [Cache]: [FileCache] for local CLI use,
// [RedisCache] for sharing renders between machines, and [NullCache] when
// caching is disabled. Keys are content hashes built with [RenderKey], so a
// changed circuit or option set never hits a stale entry.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the stored data and true, or nil and false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every entry owned by the cache.
	Clear(ctx context.Context) error
	// Close releases the backend.
	Close() error
}
