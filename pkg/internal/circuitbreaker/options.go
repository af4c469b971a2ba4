package circuitbreaker

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// WithSensor attaches sensors that observe allow, record-error, trip and reset events.
func WithSensor(sensor ...types.Sensor) types.Option[types.CircuitBreaker] {
	return func(cb types.CircuitBreaker) {
		cb.ConnectSensor(sensor...)
	}
}

// WithLogger attaches loggers for state change diagnostics.
func WithLogger(logger ...types.Logger) types.Option[types.CircuitBreaker] {
	return func(cb types.CircuitBreaker) {
		cb.ConnectLogger(logger...)
	}
}

// WithComponentMetadata sets the breaker's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.CircuitBreaker] {
	return func(cb types.CircuitBreaker) {
		cb.SetComponentMetadata(name, id)
	}
}
