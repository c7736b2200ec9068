//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthz(t *testing.T) {
	tests := []struct {
		name     string
		ping     PingFunc
		expected int
		body     string
	}{
		{"NoPing", nil, http.StatusOK, `{"status":"ok","database":"up"}`},
		{"DatabaseUp", func(ctx context.Context) error { return nil }, http.StatusOK, `{"status":"ok","database":"up"}`},
		{"DatabaseDown", func(ctx context.Context) error { return errors.New("connection refused") }, http.StatusServiceUnavailable, `{"status":"unavailable","database":"down"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext("GET", "/healthz", "")
			Healthz(tt.ping)(c)

			assert.Equal(t, tt.expected, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestHealthz_PassesDeadline(t *testing.T) {
	c, _ := newTestContext("GET", "/healthz", "")
	Healthz(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	})(c)
}
