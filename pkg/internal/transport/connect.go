package transport

import (
	"github.com/joeydtaylor/splunklogger/pkg/internal/circuitbreaker"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// ConnectLogger attaches loggers. They are shared with the breaker and the HTTP client.
func (t *Transport) ConnectLogger(loggers ...types.Logger) {
	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}
	loggers = loggers[:n]

	t.configLock.Lock()
	t.loggers = append(t.loggers, loggers...)
	t.configLock.Unlock()

	t.client.ConnectLogger(loggers...)
	if cb := t.CircuitBreaker(); cb != nil {
		cb.ConnectLogger(loggers...)
	}
}

// ConnectSensor attaches sensors. They are shared with the breaker and the HTTP client.
func (t *Transport) ConnectSensor(sensors ...types.Sensor) {
	n := 0
	for _, s := range sensors {
		if s != nil {
			sensors[n] = s
			n++
		}
	}
	if n == 0 {
		return
	}
	sensors = sensors[:n]

	t.configLock.Lock()
	t.sensors = append(t.sensors, sensors...)
	t.configLock.Unlock()

	t.client.ConnectSensor(sensors...)
	if cb := t.CircuitBreaker(); cb != nil {
		cb.ConnectSensor(sensors...)
	}
}

func (t *Transport) newBreaker(threshold int) types.CircuitBreaker {
	metadata := t.GetComponentMetadata()
	return circuitbreaker.NewCircuitBreaker(threshold,
		circuitbreaker.WithComponentMetadata(metadata.Name+"-breaker", metadata.ID),
		circuitbreaker.WithLogger(t.snapshotLoggers()...),
		circuitbreaker.WithSensor(t.snapshotSensors()...),
	)
}
