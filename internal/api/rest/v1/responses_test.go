//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperr.NewValidationError("email", "required"), http.StatusUnprocessableEntity},
		{apperr.NotFoundf("invoice %s not found", "x"), http.StatusNotFound},
		{apperr.Conflictf("already paid"), http.StatusConflict},
		{apperr.ErrUnauthorized, http.StatusUnauthorized},
		{apperr.Forbiddenf("not yours"), http.StatusForbidden},
		{apperr.ErrInsufficientFunds, http.StatusPaymentRequired},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestWriteError_ValidationCarriesFields(t *testing.T) {
	c, w := newTestContext("POST", "/api/auth/register", "")

	writeError(c, apperr.NewValidationError("email", "email"))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Message)
	assert.Equal(t, "email", body.Errors["email"])
	assert.True(t, c.IsAborted())
}

func TestWriteError_HidesInternalErrors(t *testing.T) {
	c, w := newTestContext("GET", "/api/invoices", "")

	writeError(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Len(t, c.Errors, 1)
}

func TestBindJSON_MalformedBodyIsBadRequest(t *testing.T) {
	c, w := newTestContext("POST", "/api/auth/login", "{not json")

	var request LoginRequest
	assert.False(t, bindJSON(c, &request))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReadPaging(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", 50, 0},
		{"?limit=20&offset=40", 20, 40},
		{"?limit=0", 50, 0},
		{"?limit=abc&offset=xyz", 50, 0},
		{"?limit=-5&offset=-1", 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := newTestContext("GET", "/api/invoices"+tt.query, "")
			limit, offset := 50, 0

			readPaging(c, &limit, &offset)

			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
