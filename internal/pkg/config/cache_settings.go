package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CacheSettings configures the lookup cache used for ads, airports and SEO metadata
type CacheSettings struct {
	Type          string        `mapstructure:"type" validate:"required,oneof=memory redis"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" validate:"min=0,max=15"`
	MaxEntries    int           `mapstructure:"max_entries" validate:"min=0"`
	DefaultTTL    time.Duration `mapstructure:"default_ttl" validate:"required"`
}

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CacheSettings: %w", err)
	}

	if s.Type == RedisCacheType && s.RedisAddr == "" {
		return fmt.Errorf("redis address is required for redis cache")
	}

	return nil
}
