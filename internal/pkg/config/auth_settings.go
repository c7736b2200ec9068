package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures issuing and verifying bearer tokens
type AuthSettings struct {
	JWTSecret string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer    string        `mapstructure:"issuer" validate:"required"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"required"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.TokenTTL < time.Minute {
		return fmt.Errorf("token ttl must be at least one minute")
	}

	return nil
}
