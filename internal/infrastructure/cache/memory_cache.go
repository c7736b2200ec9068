// Package cache implements caching.Cache on top of an in-process LRU or a shared Redis instance.
package cache

import (
	"context"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/caching"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultMaxEntries = 1024

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryCache keeps entries in a bounded LRU. The LRU evicts after the default
// TTL; entries stored with a shorter TTL also carry their own deadline.
type memoryCache struct {
	lru        *expirable.LRU[string, memoryEntry]
	defaultTTL time.Duration
	now        func() time.Time
}

// NewMemoryCache creates an in-process cache holding at most maxEntries values
func NewMemoryCache(maxEntries int, defaultTTL time.Duration) caching.Cache {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &memoryCache{
		lru:        expirable.NewLRU[string, memoryEntry](maxEntries, nil, defaultTTL),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns a copy of the cached value
func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, true, nil
}

// Set stores a copy of value
func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: make([]byte, len(value))}
	copy(entry.value, value)
	if ttl > 0 && (c.defaultTTL <= 0 || ttl < c.defaultTTL) {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, entry)
	return nil
}

// Delete removes keys
func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		c.lru.Remove(key)
	}
	return nil
}
