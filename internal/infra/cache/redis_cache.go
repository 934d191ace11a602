// Package cache implements the collection cache on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"subhub/config"
	"subhub/internal/domain/lifecycle"
	"subhub/internal/domain/service"
	"subhub/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "subhub:collection:"

// Params defines the dependencies for the collection cache.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

type redisCollectionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New creates the collection cache. When Redis is disabled in config, a no-op
// cache is returned so the rest of the application needs no special casing.
func New(params Params) (service.CollectionCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("collection cache disabled, using no-op cache")

		return NewNoop(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}
			params.Logger.Info("connected to redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return &redisCollectionCache{
		client: client,
		ttl:    cfg.TTL,
		logger: params.Logger,
	}, nil
}

func (c *redisCollectionCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		c.logger.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.Any("error", err))

		return false, errors.Wrap(err, "failed to get cached collection")
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// A stale or corrupted entry behaves like a miss.
		c.logger.WarnContext(ctx, "cache entry unmarshal failed", slog.String("key", key), slog.Any("error", err))

		return false, nil
	}

	return true, nil
}

func (c *redisCollectionCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal collection for caching")
	}

	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.Any("error", err))

		return errors.Wrap(err, "failed to cache collection")
	}

	return nil
}

func (c *redisCollectionCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, keyPrefix+key)
	}

	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))

		return errors.Wrap(err, "failed to invalidate cache keys")
	}

	return nil
}
