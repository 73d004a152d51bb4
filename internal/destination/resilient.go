package destination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/neexbeast/tripsaver/internal/metrics"
)

// BreakerSettings tunes the circuit breaker in front of the live source.
type BreakerSettings struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// TripAfter is the number of consecutive failures that opens the circuit.
	TripAfter uint32
}

// DefaultBreakerSettings opens after 3 consecutive failures and probes again after 30s.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:        "catalog-live",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		TripAfter:   3,
	}
}

var errEmptyCatalog = errors.New("live source returned no destinations")

// ResilientSource reads from a live source through a circuit breaker and
// serves the fallback source whenever the live read fails or the circuit is open.
type ResilientSource struct {
	live     Source
	fallback Source
	cb       *gobreaker.CircuitBreaker[[]Destination]
	log      *slog.Logger
}

// NewResilientSource wraps live with a breaker and a fallback.
func NewResilientSource(live, fallback Source, settings BreakerSettings, log *slog.Logger) *ResilientSource {
	if log == nil {
		log = slog.Default()
	}
	if settings.TripAfter == 0 {
		settings.TripAfter = DefaultBreakerSettings().TripAfter
	}

	metrics.CatalogBreakerState.WithLabelValues(settings.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]Destination](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.TripAfter
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info("catalog breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.CatalogBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &ResilientSource{live: live, fallback: fallback, cb: cb, log: log}
}

// Destinations returns live records, or fallback records when the live read fails.
// An error is returned only when the fallback fails as well.
func (s *ResilientSource) Destinations(ctx context.Context) ([]Destination, error) {
	records, err := s.cb.Execute(func() ([]Destination, error) {
		recs, err := s.live.Destinations(ctx)
		if err != nil {
			return nil, err
		}
		if len(recs) == 0 {
			return nil, errEmptyCatalog
		}
		return recs, nil
	})
	if err == nil {
		return records, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		s.log.Warn("live catalog skipped, circuit open", "err", err)
	} else {
		s.log.Warn("live catalog read failed, serving fallback", "err", err)
	}
	metrics.CatalogFallbacks.Inc()

	records, fbErr := s.fallback.Destinations(ctx)
	if fbErr != nil {
		return nil, fmt.Errorf("%w: live: %w, fallback: %w", ErrCatalogUnavailable, err, fbErr)
	}
	return records, nil
}

// State reports the breaker state ("closed", "half-open", "open").
func (s *ResilientSource) State() string {
	return s.cb.State().String()
}

func stateToFloat(st gobreaker.State) float64 {
	switch st {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
