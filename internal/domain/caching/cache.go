// Package caching declares the key/value cache used for hot public lookups
// (ads per placement, airport search, SEO metadata).
package caching

import (
	"context"
	"time"
)

// Cache is a byte oriented key/value store with per entry expiry.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl; ttl <= 0 uses the implementation default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the given keys; missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
