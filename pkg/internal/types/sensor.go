package types

import "time"

// Suppression reasons reported through Sensor.InvokeOnSuppressed.
const (
	SuppressedNotConfigured = "not_configured"
	SuppressedDisabled      = "logging_disabled"
	SuppressedCircuitOpen   = "circuit_open"
	SuppressedClosed        = "transport_closed"
	SuppressedEncodeFailure = "encode_failure"
)

// Sensor collects callbacks fired by pipeline components. Callbacks run synchronously
// on the goroutine that triggered them and must not block.
type Sensor interface {
	ConnectLogger(...Logger)

	// GetComponentMetadata retrieves metadata about the Sensor, including identifiers like name and ID,
	// useful for logging and monitoring purposes.
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)

	// Transport hooks
	RegisterOnSend(...func(ComponentMetadata, Event))
	RegisterOnSuppressed(...func(ComponentMetadata, string))
	RegisterOnSendSuccess(...func(ComponentMetadata, int, time.Duration))
	RegisterOnSendError(...func(ComponentMetadata, error))

	InvokeOnSend(ComponentMetadata, Event)
	InvokeOnSuppressed(ComponentMetadata, string)
	InvokeOnSendSuccess(ComponentMetadata, int, time.Duration)
	InvokeOnSendError(ComponentMetadata, error)

	// Circuit breaker hooks
	RegisterOnCircuitBreakerTrip(...func(ComponentMetadata, int64, int))
	RegisterOnCircuitBreakerReset(...func(ComponentMetadata, int64))
	RegisterOnCircuitBreakerRecordError(...func(ComponentMetadata, int64))
	RegisterOnCircuitBreakerAllow(...func(ComponentMetadata))

	InvokeOnCircuitBreakerTrip(ComponentMetadata, int64, int)
	InvokeOnCircuitBreakerReset(ComponentMetadata, int64)
	InvokeOnCircuitBreakerRecordError(ComponentMetadata, int64)
	InvokeOnCircuitBreakerAllow(ComponentMetadata)

	// HTTP client hooks
	RegisterOnHTTPClientRequestStart(...func(ComponentMetadata))
	RegisterOnHTTPClientResponseReceived(...func(ComponentMetadata, int))
	RegisterOnHTTPClientError(...func(ComponentMetadata, error))
	RegisterOnHTTPClientRequestComplete(...func(ComponentMetadata))

	InvokeOnHTTPClientRequestStart(ComponentMetadata)
	InvokeOnHTTPClientResponseReceived(ComponentMetadata, int)
	InvokeOnHTTPClientError(ComponentMetadata, error)
	InvokeOnHTTPClientRequestComplete(ComponentMetadata)

	// Runtime error capture hooks
	RegisterOnUncaughtError(...func(ComponentMetadata, string))
	InvokeOnUncaughtError(ComponentMetadata, string)
}
