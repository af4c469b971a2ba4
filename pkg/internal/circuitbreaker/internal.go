package circuitbreaker

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// openLocked reports whether the breaker refuses attempts. stateLock must be held.
func (cb *CircuitBreaker) openLocked() bool {
	return cb.failures >= cb.threshold
}

// clearLocked zeroes the failure count and reports whether the breaker was open.
// stateLock must be held.
func (cb *CircuitBreaker) clearLocked() bool {
	wasOpen := cb.openLocked()
	cb.failures = 0
	return wasOpen
}

// observers copies the attached loggers and sensors along with the metadata
// they are reported under.
func (cb *CircuitBreaker) observers() ([]types.Logger, []types.Sensor, types.ComponentMetadata) {
	cb.configLock.Lock()
	defer cb.configLock.Unlock()
	return append([]types.Logger(nil), cb.loggers...),
		append([]types.Sensor(nil), cb.sensors...),
		cb.componentMetadata
}

func (cb *CircuitBreaker) snapshotMetadata() types.ComponentMetadata {
	_, _, metadata := cb.observers()
	return metadata
}

// signalReset never blocks; a pending signal absorbs later ones.
func (cb *CircuitBreaker) signalReset() {
	select {
	case cb.resetNotifyChan <- struct{}{}:
	default:
	}
}
