package cache

import (
	"context"

	"subhub/internal/domain/service"
)

// noopCache satisfies the CollectionCache interface without storing anything.
// Used when Redis is not configured.
type noopCache struct{}

// NewNoop returns a cache that always misses.
func NewNoop() service.CollectionCache {
	return noopCache{}
}

func (noopCache) Get(_ context.Context, _ string, _ any) (bool, error) { return false, nil }

func (noopCache) Set(_ context.Context, _ string, _ any) error { return nil }

func (noopCache) Invalidate(_ context.Context, _ ...string) error { return nil }
