package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RateLimitSettings configures the per-client request limiter on public endpoints
type RateLimitSettings struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gt=0"`
	Burst             int     `mapstructure:"burst" validate:"min=1"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}

	return nil
}
