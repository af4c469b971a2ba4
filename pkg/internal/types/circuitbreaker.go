package types

// CircuitBreaker counts consecutive send failures and refuses further attempts once the
// count reaches the threshold. Only a successful completion closes it again.
type CircuitBreaker interface {
	// Allow reports whether a send may be attempted (consecutive failures below the threshold).
	Allow() bool

	// RecordError increments the consecutive failure count, tripping the breaker at the threshold.
	RecordError()

	// RecordSuccess resets the consecutive failure count to zero and closes the breaker.
	RecordSuccess()

	// Reset closes the breaker and clears the failure count.
	Reset()

	// Trip forces the breaker open.
	Trip()

	// Failures returns the current consecutive failure count.
	Failures() int

	// Threshold returns the configured failure threshold.
	Threshold() int

	// SetThreshold replaces the threshold and clears the failure count.
	SetThreshold(threshold int)

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// NotifyOnReset provides a channel that emits a notification when the circuit breaker closes again.
	NotifyOnReset() <-chan struct{}
}
