package v1

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/metrics"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const principalKey = "principal"

// principalFrom returns the authenticated principal or nil on public routes
func principalFrom(ctx *gin.Context) *users.Principal {
	value, ok := ctx.Get(principalKey)
	if !ok {
		return nil
	}
	principal, _ := value.(*users.Principal)
	return principal
}

// Authenticate requires a valid bearer token and stores its principal on the context
func Authenticate(tokens users.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			writeError(ctx, apperr.ErrUnauthorized)
			return
		}

		principal, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// RequireRole lets the request through only for principals holding one of roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal := principalFrom(ctx)
		if principal == nil {
			writeError(ctx, apperr.ErrUnauthorized)
			return
		}
		for _, role := range roles {
			if principal.Role == role {
				ctx.Next()
				return
			}
		}
		writeError(ctx, apperr.Forbiddenf("role %s may not access this resource", principal.Role))
	}
}

// RateLimiter keeps one token bucket per client IP. Idle clients are
// forgotten after ten minutes.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewRateLimiter creates a RateLimiter from settings
func NewRateLimiter(settings *config.RateLimitSettings) *RateLimiter {
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](8192, nil, 10*time.Minute),
		limit:    rate.Limit(settings.RequestsPerSecond),
		burst:    settings.Burst,
	}
}

func (l *RateLimiter) limiterFor(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok := l.limiters.Get(client); ok {
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Add(client, limiter)
	return limiter
}

// Middleware rejects requests over the client's budget with 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.limiterFor(ctx.ClientIP()).Allow() {
			ctx.Header("Retry-After", "1")
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Message: "rate limit exceeded"})
			return
		}
		ctx.Next()
	}
}

// RequestLogger logs every request with its status and latency as fields, plus
// any internal error a handler attached
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		entry := log.With(
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"client", ctx.ClientIP(),
		)
		if len(ctx.Errors) > 0 {
			entry = entry.With("error", ctx.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

// Metrics records in-flight requests, request counts and latencies per route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		done := m.RequestStarted()
		start := time.Now()
		ctx.Next()
		done()

		m.ObserveRequest(ctx.Request.Method, ctx.FullPath(), ctx.Writer.Status(), time.Since(start))
	}
}
