package circuitbreaker

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// NotifyLoggers emits a log entry to all configured loggers.
func (cb *CircuitBreaker) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers, _, _ := cb.observers()
	for _, logger := range loggers {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

func (cb *CircuitBreaker) notifyAllow() {
	_, sensors, metadata := cb.observers()
	for _, s := range sensors {
		s.InvokeOnCircuitBreakerAllow(metadata)
	}
}

func (cb *CircuitBreaker) notifyRecordError(time int64) {
	_, sensors, metadata := cb.observers()
	for _, s := range sensors {
		s.InvokeOnCircuitBreakerRecordError(metadata, time)
	}
}

func (cb *CircuitBreaker) notifyTrip(time int64, failures int) {
	_, sensors, metadata := cb.observers()
	for _, s := range sensors {
		s.InvokeOnCircuitBreakerTrip(metadata, time, failures)
	}
}

func (cb *CircuitBreaker) notifyReset(time int64) {
	_, sensors, metadata := cb.observers()
	for _, s := range sensors {
		s.InvokeOnCircuitBreakerReset(metadata, time)
	}
}
