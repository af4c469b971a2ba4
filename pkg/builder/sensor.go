package builder

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/sensor"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

type SensorStats = sensor.Stats

// NewSensor creates a sensor. Its Stats counters are always maintained.
func NewSensor(options ...types.Option[types.Sensor]) *sensor.Sensor {
	return sensor.NewSensor(options...)
}

func SensorWithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(logger...)
}

func SensorWithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return sensor.WithComponentMetadata(name, id)
}

// SensorWithOnSendFunc registers a callback for every event handed to the network.
func SensorWithOnSendFunc(callback ...func(ComponentMetadata, Event)) types.Option[types.Sensor] {
	return sensor.WithOnSendFunc(callback...)
}

// SensorWithOnSuppressedFunc registers a callback for sends dropped before a request.
func SensorWithOnSuppressedFunc(callback ...func(c ComponentMetadata, reason string)) types.Option[types.Sensor] {
	return sensor.WithOnSuppressedFunc(callback...)
}

func SensorWithOnSendSuccessFunc(callback ...func(c ComponentMetadata, status int, elapsed time.Duration)) types.Option[types.Sensor] {
	return sensor.WithOnSendSuccessFunc(callback...)
}

func SensorWithOnSendErrorFunc(callback ...func(c ComponentMetadata, err error)) types.Option[types.Sensor] {
	return sensor.WithOnSendErrorFunc(callback...)
}

// SensorWithCircuitBreakerTripFunc registers a callback fired when the failure count reaches the threshold.
func SensorWithCircuitBreakerTripFunc(callback ...func(c ComponentMetadata, time int64, failures int)) types.Option[types.Sensor] {
	return sensor.WithCircuitBreakerTripFunc(callback...)
}

func SensorWithCircuitBreakerResetFunc(callback ...func(c ComponentMetadata, time int64)) types.Option[types.Sensor] {
	return sensor.WithCircuitBreakerResetFunc(callback...)
}

func SensorWithCircuitBreakerRecordErrorFunc(callback ...func(c ComponentMetadata, time int64)) types.Option[types.Sensor] {
	return sensor.WithCircuitBreakerRecordErrorFunc(callback...)
}

func SensorWithCircuitBreakerAllowFunc(callback ...func(c ComponentMetadata)) types.Option[types.Sensor] {
	return sensor.WithCircuitBreakerAllowFunc(callback...)
}

func SensorWithOnHTTPClientRequestStartFunc(callback ...func(ComponentMetadata)) types.Option[types.Sensor] {
	return sensor.WithOnHTTPClientRequestStartFunc(callback...)
}

func SensorWithOnHTTPClientResponseReceivedFunc(callback ...func(c ComponentMetadata, status int)) types.Option[types.Sensor] {
	return sensor.WithOnHTTPClientResponseReceivedFunc(callback...)
}

func SensorWithOnHTTPClientErrorFunc(callback ...func(c ComponentMetadata, err error)) types.Option[types.Sensor] {
	return sensor.WithOnHTTPClientErrorFunc(callback...)
}

func SensorWithOnHTTPClientRequestCompleteFunc(callback ...func(ComponentMetadata)) types.Option[types.Sensor] {
	return sensor.WithOnHTTPClientRequestCompleteFunc(callback...)
}

// SensorWithOnUncaughtErrorFunc registers a callback for every reported uncaught error.
func SensorWithOnUncaughtErrorFunc(callback ...func(c ComponentMetadata, message string)) types.Option[types.Sensor] {
	return sensor.WithOnUncaughtErrorFunc(callback...)
}
