package feed

import (
	"context"
	"errors"
	"time"

	"github.com/pfrederiksen/pool-standings/internal/logger"
	"github.com/pfrederiksen/pool-standings/internal/scoring"
	"github.com/sony/gobreaker"
)

// BreakerSource trips after repeated failures and rejects fetches with
// gobreaker.ErrOpenState until the cool-down has passed.
type BreakerSource struct {
	source  Source
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerSource wraps source. The breaker opens after maxFailures consecutive failures
// and lets a single trial request through once cooldown has elapsed.
func NewBreakerSource(source Source, maxFailures uint32, cooldown time.Duration) *BreakerSource {
	if maxFailures == 0 {
		maxFailures = 1
	}

	settings := gobreaker.Settings{
		Name:        "feed",
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Feed circuit breaker state changed", logger.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			logger.IncrCounter("feed.breaker_" + to.String())
		},
		// cancellation is not a feed failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &BreakerSource{
		source:  source,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Fetch calls the wrapped source through the breaker
func (s *BreakerSource) Fetch(ctx context.Context) ([]scoring.Row, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.source.Fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]scoring.Row), nil
}

// State reports the breaker state
func (s *BreakerSource) State() gobreaker.State {
	return s.breaker.State()
}
