package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/httprate"
	"github.com/labstack/echo/v4"

	"github.com/skyroute/route-console/internal/adapter/http/response"
)

// RateLimitConfig holds configuration for rate limiting.
type RateLimitConfig struct {
	// Enabled turns the limiter on
	Enabled bool
	// Requests per window
	RequestLimit int
	// Window duration
	WindowLength time.Duration
}

// DefaultRateLimitConfig allows 120 requests per minute per console.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:      true,
		RequestLimit: 120,
		WindowLength: time.Minute,
	}
}

// RateLimit returns echo middleware limiting requests per console session,
// falling back to the client IP when no session header is present.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	limiter := httprate.Limit(
		cfg.RequestLimit,
		cfg.WindowLength,
		httprate.WithKeyFuncs(keyBySessionOrIP),
		httprate.WithLimitHandler(rateLimitExceededHandler(cfg.WindowLength)),
	)
	return echo.WrapMiddleware(limiter)
}

// keyBySessionOrIP returns the console session if present, otherwise the client IP.
func keyBySessionOrIP(r *http.Request) (string, error) {
	if session := strings.TrimSpace(r.Header.Get(ConsoleSessionHeader)); session != "" {
		return "session:" + session, nil
	}
	return httprate.KeyByRealIP(r)
}

func rateLimitExceededHandler(window time.Duration) http.HandlerFunc {
	retryAfter := int(window.Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	return func(w http.ResponseWriter, r *http.Request) {
		// httprate does not expose the reset time, the window is an upper bound
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(&response.ErrorDetail{
			Code:    response.CodeRateLimited,
			Message: response.MsgRateLimited,
		})
	}
}
