// Package validators wires the marketplace specific validation tags into a
// shared go-playground validator instance.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)

	instance *validator.Validate
	once     sync.Once
)

// IATAValidation accepts three letter upper case airport codes such as DXB.
func IATAValidation(fl validator.FieldLevel) bool {
	return iataPattern.MatchString(fl.Field().String())
}

// SlugValidation accepts lower case, hyphen separated url slugs.
func SlugValidation(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// CurrencyValidation accepts ISO 4217 currency codes known to x/text.
func CurrencyValidation(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 || strings.ToUpper(code) != code {
		return false
	}
	_, err := currency.ParseISO(code)
	return err == nil
}

// Get returns the process wide validator with all custom tags registered.
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		for tag, fn := range map[string]validator.Func{
			"iata":     IATAValidation,
			"slug":     SlugValidation,
			"currency": CurrencyValidation,
		} {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("failed to register custom validator %s: %v", tag, err))
			}
		}
		instance = v
	})
	return instance
}

// Struct validates s and converts validator errors into an *apperr.ValidationError.
func Struct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		return &apperr.ValidationError{Fields: fields}
	}
	return fmt.Errorf("validation error: %w", err)
}

// Var validates a single value against tag and reports it under field.
func Var(field string, value interface{}, tag string) error {
	if err := Get().Var(value, tag); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return apperr.NewValidationError(field, validationErrors[0].Tag())
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
