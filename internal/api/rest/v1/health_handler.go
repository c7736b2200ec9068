package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingFunc reports whether a dependency is reachable
type PingFunc func(ctx context.Context) error

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Healthz answers 200 when the database responds and 503 otherwise
func Healthz(ping PingFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if ping != nil {
			if err := ping(pingCtx); err != nil {
				_ = ctx.Error(err)
				ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "down"})
				return
			}
		}
		ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "up"})
	}
}
