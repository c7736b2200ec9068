package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BillingSettings holds invoice defaults
type BillingSettings struct {
	Currency     string  `mapstructure:"currency" validate:"required,len=3,uppercase"`
	TaxPercent   float64 `mapstructure:"tax_percent" validate:"min=0,max=100"`
	NumberPrefix string  `mapstructure:"number_prefix" validate:"required,alphanum,max=10"`
	DueDays      int     `mapstructure:"due_days" validate:"min=0,max=365"`
}

// Validate checks that all fields in BillingSettings are valid
func (s *BillingSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BillingSettings: %w", err)
	}

	return nil
}
