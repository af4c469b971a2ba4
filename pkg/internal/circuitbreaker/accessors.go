package circuitbreaker

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// GetComponentMetadata returns the circuit breaker metadata.
func (cb *CircuitBreaker) GetComponentMetadata() types.ComponentMetadata {
	return cb.snapshotMetadata()
}

// SetComponentMetadata renames the breaker. The component type is kept.
func (cb *CircuitBreaker) SetComponentMetadata(name string, id string) {
	cb.configLock.Lock()
	cb.componentMetadata.Name = name
	cb.componentMetadata.ID = id
	cb.configLock.Unlock()
}

// Failures returns the consecutive failure count.
func (cb *CircuitBreaker) Failures() int {
	cb.stateLock.Lock()
	defer cb.stateLock.Unlock()
	return cb.failures
}

// Threshold returns the configured failure threshold.
func (cb *CircuitBreaker) Threshold() int {
	cb.stateLock.Lock()
	defer cb.stateLock.Unlock()
	return cb.threshold
}

// NotifyOnReset returns a channel signaled when the breaker closes again.
// The channel holds at most one pending signal.
func (cb *CircuitBreaker) NotifyOnReset() <-chan struct{} {
	return cb.resetNotifyChan
}
