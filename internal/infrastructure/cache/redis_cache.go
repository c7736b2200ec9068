package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/caching"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

// redisCache stores entries in Redis so several API replicas share them
type redisCache struct {
	client     redis.UniversalClient
	prefix     string
	defaultTTL time.Duration
}

// NewRedisCache connects to Redis and verifies the connection with PING
func NewRedisCache(ctx context.Context, settings *config.CacheSettings) (caching.Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.RedisAddr,
		Password: settings.RedisPassword,
		DB:       settings.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.RedisAddr, err)
	}
	return newRedisCacheWithClient(client, settings.DefaultTTL), nil
}

func newRedisCacheWithClient(client redis.UniversalClient, defaultTTL time.Duration) *redisCache {
	return &redisCache{client: client, prefix: "marketplace:", defaultTTL: defaultTTL}
}

// Get returns the cached value; redis.Nil is reported as a miss
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value with ttl, falling back to the default TTL
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys in a single DEL
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = c.prefix + key
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
