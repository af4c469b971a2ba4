package circuitbreaker

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// Allow reports whether the consecutive failure count is still below the threshold.
// It never changes state.
func (cb *CircuitBreaker) Allow() bool {
	cb.stateLock.Lock()
	allowed := !cb.openLocked()
	cb.stateLock.Unlock()

	if allowed {
		cb.notifyAllow()
	}
	return allowed
}

// RecordError counts a failed completion and trips the breaker when the count reaches the threshold.
func (cb *CircuitBreaker) RecordError() {
	now := time.Now()

	cb.stateLock.Lock()
	cb.failures++
	failures := cb.failures
	threshold := cb.threshold
	tripped := failures == threshold
	cb.stateLock.Unlock()

	metadata := cb.snapshotMetadata()
	cb.notifyRecordError(now.UnixNano())
	cb.NotifyLoggers(types.DebugLevel, "Circuit breaker recorded error", "component", metadata, "failures", failures, "threshold", threshold)

	if tripped {
		cb.notifyTrip(now.UnixNano(), failures)
		cb.NotifyLoggers(types.WarnLevel, "Circuit breaker tripped", "component", metadata, "failures", failures, "threshold", threshold)
	}
}

// RecordSuccess clears the failure count. An open breaker closes.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.stateLock.Lock()
	wasOpen := cb.clearLocked()
	cb.stateLock.Unlock()

	if wasOpen {
		cb.closed("success")
	}
}

// Reset clears the failure count. An open breaker closes.
func (cb *CircuitBreaker) Reset() {
	cb.stateLock.Lock()
	wasOpen := cb.clearLocked()
	cb.stateLock.Unlock()

	if wasOpen {
		cb.closed("reset")
	}
}

// Trip forces the breaker open by raising the failure count to the threshold.
func (cb *CircuitBreaker) Trip() {
	now := time.Now()

	cb.stateLock.Lock()
	if cb.openLocked() {
		cb.stateLock.Unlock()
		return
	}
	cb.failures = cb.threshold
	failures := cb.failures
	cb.stateLock.Unlock()

	cb.notifyTrip(now.UnixNano(), failures)
	cb.NotifyLoggers(types.WarnLevel, "Circuit breaker tripped", "component", cb.snapshotMetadata(), "failures", failures, "forced", true)
}

// SetThreshold replaces the threshold and starts counting from zero.
func (cb *CircuitBreaker) SetThreshold(threshold int) {
	cb.stateLock.Lock()
	wasOpen := cb.clearLocked()
	cb.threshold = threshold
	cb.stateLock.Unlock()

	cb.NotifyLoggers(types.DebugLevel, "Circuit breaker threshold changed", "component", cb.snapshotMetadata(), "threshold", threshold)
	if wasOpen && threshold > 0 {
		cb.closed("threshold")
	}
}

func (cb *CircuitBreaker) closed(cause string) {
	cb.notifyReset(time.Now().UnixNano())
	cb.signalReset()
	cb.NotifyLoggers(types.InfoLevel, "Circuit breaker reset", "component", cb.snapshotMetadata(), "cause", cause)
}
