package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// Cache stores raw payload bodies between fetches.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DefaultCachePrefix namespaces cache keys written by RedisCache.
const DefaultCachePrefix = "insightui:"

// RedisCache implements Cache on top of a Redis client.
type RedisCache struct {
	client *backend.Client
	prefix string
}

// NewRedisCache wraps an existing client. An empty prefix falls back to
// DefaultCachePrefix.
func NewRedisCache(client *backend.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = DefaultCachePrefix
	}
	return &RedisCache{client: client, prefix: prefix}
}

// Get returns the cached body for key. A miss is reported with ok=false and a
// nil error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("fetch: redis get: %w", err)
	}
	return data, true, nil
}

// Set stores value under key. A zero ttl keeps the entry until evicted.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("fetch: redis set: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
