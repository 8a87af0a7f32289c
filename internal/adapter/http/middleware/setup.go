package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Options configures the middleware stack installed by SetupWithConfig.
type Options struct {
	Recovery  RecoveryConfig
	RateLimit RateLimitConfig
}

// DefaultOptions returns the default middleware options.
func DefaultOptions() Options {
	return Options{
		Recovery:  DefaultRecoveryConfig(),
		RateLimit: DefaultRateLimitConfig(),
	}
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. ConsoleSession - Second, so the session is logged and used as rate limit key
//  3. RequestLogger - Third, logs all requests with request ID and session
//  4. Recover - Fourth, catches panics and returns 500 (wraps handlers)
//  5. RateLimit - Last, rejected requests are still logged
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultOptions())
}

// SetupWithConfig registers middleware with custom options.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, opts Options) {
	e.Use(RequestID())
	e.Use(ConsoleSession())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, opts.Recovery))
	if opts.RateLimit.Enabled {
		e.Use(RateLimit(opts.RateLimit))
	}
}

// Chain returns the base middleware as a slice for use with route groups.
// Rate limiting is not included.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		ConsoleSession(),
		RequestLogger(log),
		Recover(log),
	}
}
