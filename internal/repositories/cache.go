package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/course-platform/internal/logger"
)

// CacheRepository stores JSON-encoded read models in Redis
type CacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached values
}

// NewCacheRepository creates a new repository instance with the given TTL
func NewCacheRepository(client *redis.Client, expiration time.Duration) *CacheRepository {
	return &CacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get decodes the cached value for key into dest. It reports false on a miss.
func (r *CacheRepository) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("cache miss", "key", key)
		return false, nil
	}
	if err != nil {
		logger.Log.Warnw("cache get failed", "key", key, "error", err)
		return false, err
	}

	if err := json.Unmarshal(val, dest); err != nil {
		logger.Log.Warnw("cache decode failed", "key", key, "error", err)
		return false, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return true, nil
}

// Set caches value under key with the repository expiration
func (r *CacheRepository) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "ttl", r.exp, "error", err)
	return err
}

// Delete drops the given keys
func (r *CacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.client.Del(ctx, keys...).Err()
	logger.Log.Debugw("cache delete", "keys", keys, "error", err)
	return err
}
