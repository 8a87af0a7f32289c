package upstream

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/skyroute/route-console/internal/domain"
)

// BreakerConfig holds the circuit breaker settings guarding upstream calls.
type BreakerConfig struct {
	// Name identifies the breaker in logs.
	Name string

	// FailureThreshold is the number of consecutive transport failures that opens the breaker.
	// Default: 5
	FailureThreshold uint32

	// Timeout is how long the breaker stays open before letting a trial request through.
	// Default: 30 seconds
	Timeout time.Duration
}

// DefaultBreakerConfig returns the breaker configuration used when none is supplied.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "upstream",
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
	}
}

// newBreaker creates the breaker shared by every call of a Client.
//
// Only transport failures count against the upstream. A 404, a rejected payload or
// a canceled request means the service answered (or was never asked), so those
// are reported to the breaker as successes.
func newBreaker(cfg BreakerConfig, log zerolog.Logger) *gobreaker.CircuitBreaker[*response] {
	threshold := cfg.FailureThreshold
	return gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			switch domain.KindOf(err) {
			case domain.KindTransport, domain.KindUnknown:
				return err == nil
			default:
				return true
			}
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Upstream circuit breaker changed state")
		},
	})
}
