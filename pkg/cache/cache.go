package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer. Implementations
// must treat a miss as (false, nil) and leave dest untouched on a miss.
type Cache interface {
	// Get unmarshals the cached value for key into dest.
	// Returns true on a hit, false on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
