package cache

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/caching"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
)

// NewCache returns the cache selected by settings.Type
func NewCache(ctx context.Context, settings *config.CacheSettings) (caching.Cache, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.MemoryCacheType:
		return NewMemoryCache(settings.MaxEntries, settings.DefaultTTL), nil
	case config.RedisCacheType:
		return NewRedisCache(ctx, settings)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", settings.Type)
	}
}
