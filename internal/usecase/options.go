// Package usecase orchestrates route searches against the upstream route finder.
// It validates criteria before any call, normalizes them into a wire query and
// makes sure only the latest search of an operator session is ever committed.
package usecase

import (
	"time"

	"github.com/skyroute/route-console/internal/infrastructure/logger"
	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
)

// Config contains configuration options for the route search use case.
type Config struct {
	// Location is the operator time zone; a travel date names a calendar day there.
	// Default: UTC
	Location *time.Location

	// VerifyShape drops routes that break the one-flight route shape instead of
	// passing upstream results through untouched.
	VerifyShape bool

	// Clock provides "today" for past-date validation.
	// Default: the real clock
	Clock timeutil.Clock

	// Logger receives search outcomes.
	// Default: a disabled logger
	Logger *logger.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Location:    time.UTC,
		VerifyShape: false,
		Clock:       timeutil.NewRealClock(),
		Logger:      logger.Nop(),
	}
}
