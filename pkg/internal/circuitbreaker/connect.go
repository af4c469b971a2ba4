package circuitbreaker

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// ConnectSensor registers sensors for circuit breaker events.
func (cb *CircuitBreaker) ConnectSensor(sensors ...types.Sensor) {
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

	cb.configLock.Lock()
	cb.sensors = append(cb.sensors, sensors...)
	cb.configLock.Unlock()

	component := cb.snapshotMetadata()
	for _, s := range sensors {
		cb.NotifyLoggers(types.DebugLevel, "ConnectSensor: connected sensor", "component", component, "sensor", s.GetComponentMetadata())
	}
}

// ConnectLogger attaches loggers to the circuit breaker.
func (cb *CircuitBreaker) ConnectLogger(loggers ...types.Logger) {
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

	cb.configLock.Lock()
	cb.loggers = append(cb.loggers, loggers[:n]...)
	cb.configLock.Unlock()

	cb.NotifyLoggers(types.DebugLevel, "ConnectLogger: connected logger", "component", cb.snapshotMetadata())
}
