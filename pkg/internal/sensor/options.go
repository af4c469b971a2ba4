package sensor

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// WithLogger creates an option to add loggers to a Sensor.
func WithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.ConnectLogger(logger...)
	}
}

// WithComponentMetadata sets the sensor's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.SetComponentMetadata(name, id)
	}
}

// WithOnSendFunc registers callbacks fired when an event is posted.
func WithOnSendFunc(callback ...func(types.ComponentMetadata, types.Event)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnSend(callback...)
	}
}

// WithOnSuppressedFunc registers callbacks fired when a send is skipped.
func WithOnSuppressedFunc(callback ...func(types.ComponentMetadata, string)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnSuppressed(callback...)
	}
}

func WithOnSendSuccessFunc(callback ...func(types.ComponentMetadata, int, time.Duration)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnSendSuccess(callback...)
	}
}

func WithOnSendErrorFunc(callback ...func(types.ComponentMetadata, error)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnSendError(callback...)
	}
}

// WithCircuitBreakerTripFunc registers callbacks receiving the trip time and failure count.
func WithCircuitBreakerTripFunc(callback ...func(types.ComponentMetadata, int64, int)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnCircuitBreakerTrip(callback...)
	}
}

func WithCircuitBreakerResetFunc(callback ...func(types.ComponentMetadata, int64)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnCircuitBreakerReset(callback...)
	}
}

func WithCircuitBreakerRecordErrorFunc(callback ...func(types.ComponentMetadata, int64)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnCircuitBreakerRecordError(callback...)
	}
}

func WithCircuitBreakerAllowFunc(callback ...func(types.ComponentMetadata)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnCircuitBreakerAllow(callback...)
	}
}

func WithOnHTTPClientRequestStartFunc(callback ...func(types.ComponentMetadata)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnHTTPClientRequestStart(callback...)
	}
}

func WithOnHTTPClientResponseReceivedFunc(callback ...func(types.ComponentMetadata, int)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnHTTPClientResponseReceived(callback...)
	}
}

func WithOnHTTPClientErrorFunc(callback ...func(types.ComponentMetadata, error)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnHTTPClientError(callback...)
	}
}

func WithOnHTTPClientRequestCompleteFunc(callback ...func(types.ComponentMetadata)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnHTTPClientRequestComplete(callback...)
	}
}

// WithOnUncaughtErrorFunc registers callbacks fired for forwarded runtime errors.
func WithOnUncaughtErrorFunc(callback ...func(types.ComponentMetadata, string)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnUncaughtError(callback...)
	}
}
