package service

import "context"

// CollectionCache defines the interface for caching whole collection
// responses. Values are stored as serialized JSON under a collection key and
// invalidated on any mutation of that collection.
type CollectionCache interface {
	// Get retrieves the cached value into dest. It returns false when the key
	// is absent or the cache is unavailable.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores the value under the key.
	Set(ctx context.Context, key string, value any) error

	// Invalidate drops the given keys.
	Invalidate(ctx context.Context, keys ...string) error
}

// Cache keys for the admin collections.
const (
	CacheKeyCustomers     = "customers"
	CacheKeyPlatforms     = "platforms"
	CacheKeySubscriptions = "subscriptions"
)
