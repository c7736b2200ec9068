//go:build unit
// +build unit

package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("accept quote: %w", Conflictf("quote %s is %s", "q-1", "rejected"))

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "quote q-1 is rejected")
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"Name": "required", "Email": "email"}}

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "validation failed: [Field: Email, Tag: email Field: Name, Tag: required]", err.Error())

	var target *ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, "email", target.Fields["Email"])
}

func TestHelpers(t *testing.T) {
	assert.ErrorIs(t, NotFoundf("invoice %s", "x"), ErrNotFound)
	assert.ErrorIs(t, Forbiddenf("nope"), ErrForbidden)
	assert.ErrorIs(t, Invalidf("bad"), ErrValidation)
	assert.ErrorIs(t, NewValidationError("IATA", "iata"), ErrValidation)
}
