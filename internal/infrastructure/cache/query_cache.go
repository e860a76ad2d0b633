package cache

import (
	"context"
	"time"
)

// QueryCache stores serialized query results under string keys with a TTL.
// Implementations must be safe for concurrent use.
type QueryCache interface {
	// Get returns the cached value for key, or ok=false on a miss.
	// An expired entry is a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key for the given TTL. A zero TTL uses the
	// implementation's default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a single key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every key starting with prefix. Used to
	// invalidate a whole family of list/count results after a mutation.
	DeletePrefix(ctx context.Context, prefix string) error

	// Close releases any resources held by the cache
	Close() error
}
