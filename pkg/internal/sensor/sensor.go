// Package sensor collects telemetry callbacks for the forwarding pipeline. Components
// invoke the registered callbacks as events happen; every sensor also keeps running
// counters of those events, readable through Stats.
package sensor

import (
	"sync"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/internal/utils"
)

// Sensor provides callback hooks for component telemetry.
type Sensor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	OnSend        []func(types.ComponentMetadata, types.Event)
	OnSuppressed  []func(types.ComponentMetadata, string)
	OnSendSuccess []func(types.ComponentMetadata, int, time.Duration)
	OnSendError   []func(types.ComponentMetadata, error)

	OnCircuitBreakerTrip        []func(types.ComponentMetadata, int64, int)
	OnCircuitBreakerReset       []func(types.ComponentMetadata, int64)
	OnCircuitBreakerRecordError []func(types.ComponentMetadata, int64)
	OnCircuitBreakerAllow       []func(types.ComponentMetadata)

	OnHTTPClientRequestStart     []func(types.ComponentMetadata)
	OnHTTPClientResponseReceived []func(types.ComponentMetadata, int)
	OnHTTPClientError            []func(types.ComponentMetadata, error)
	OnHTTPClientRequestComplete  []func(types.ComponentMetadata)

	OnUncaughtError []func(types.ComponentMetadata, string)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex

	counters counters
}

// NewSensor constructs a Sensor with optional configuration.
func NewSensor(options ...types.Option[types.Sensor]) *Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}

	for _, opt := range s.decorateCallbacks(options...) {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}
