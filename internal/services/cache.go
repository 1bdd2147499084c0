package services

import (
	"context"

	"github.com/sbilibin2017/course-platform/internal/logger"
)

//go:generate mockgen -source=cache.go -destination=mock_cache_test.go -package=services

// Cache is an optional read-through cache for read models.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// cacheGet reports a hit only when the cache is configured and healthy.
func cacheGet(ctx context.Context, c Cache, key string, dest any) bool {
	if c == nil {
		return false
	}
	hit, err := c.Get(ctx, key, dest)
	if err != nil {
		logger.Log.Warnw("cache read failed, falling back to database", "key", key, "error", err)
		return false
	}
	return hit
}

func cacheSet(ctx context.Context, c Cache, key string, value any) {
	if c == nil {
		return
	}
	if err := c.Set(ctx, key, value); err != nil {
		logger.Log.Warnw("cache write failed", "key", key, "error", err)
	}
}

func cacheDelete(ctx context.Context, c Cache, keys ...string) {
	if c == nil {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		logger.Log.Warnw("cache invalidation failed", "keys", keys, "error", err)
	}
}
