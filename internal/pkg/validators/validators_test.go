//go:build unit
// +build unit

package validators

import (
	"errors"
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Code     string `json:"code" validate:"required,iata"`
	Slug     string `json:"slug" validate:"omitempty,slug"`
	Currency string `json:"currency" validate:"required,currency"`
	Name     string `validate:"required"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name   string
		input  sample
		fields map[string]string
	}{
		{"valid", sample{Code: "DXB", Slug: "tourist-visa", Currency: "AED", Name: "x"}, nil},
		{"lower case iata", sample{Code: "dxb", Currency: "AED", Name: "x"}, map[string]string{"code": "iata"}},
		{"bad slug", sample{Code: "JFK", Slug: "Tourist Visa", Currency: "USD", Name: "x"}, map[string]string{"slug": "slug"}},
		{"unknown currency", sample{Code: "JFK", Currency: "ZZZ", Name: "x"}, map[string]string{"currency": "currency"}},
		{"missing name uses field name", sample{Code: "JFK", Currency: "USD"}, map[string]string{"Name": "required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}

			var validationErr *apperr.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.fields, validationErr.Fields)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("email", "user@example.com", "required,email"))

	err := Var("email", "not-an-email", "required,email")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Contains(t, err.Error(), "Field: email, Tag: email")
}
