package builder

import (
	"github.com/joeydtaylor/splunklogger/pkg/internal/circuitbreaker"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// NewCircuitBreaker creates a consecutive-failure breaker. Transports build their own
// from the configured threshold; this is for callers guarding other work.
func NewCircuitBreaker(threshold int, options ...types.Option[types.CircuitBreaker]) types.CircuitBreaker {
	return circuitbreaker.NewCircuitBreaker(threshold, options...)
}

func CircuitBreakerWithSensor(sensor ...types.Sensor) types.Option[types.CircuitBreaker] {
	return circuitbreaker.WithSensor(sensor...)
}

// CircuitBreakerWithLogger adds a logger to the CircuitBreaker for logging its activities.
func CircuitBreakerWithLogger(logger ...types.Logger) types.Option[types.CircuitBreaker] {
	return circuitbreaker.WithLogger(logger...)
}

func CircuitBreakerWithComponentMetadata(name string, id string) types.Option[types.CircuitBreaker] {
	return circuitbreaker.WithComponentMetadata(name, id)
}
