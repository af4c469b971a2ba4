package sensor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

type counters struct {
	sent       atomic.Int64
	suppressed atomic.Int64
	succeeded  atomic.Int64
	failed     atomic.Int64
	requests   atomic.Int64
	trips      atomic.Int64
	resets     atomic.Int64
	uncaught   atomic.Int64
	lastTrip   atomic.Int64
}

func snapshotCallbacks[T any](mu *sync.Mutex, callbacks []T) []T {
	mu.Lock()
	out := append([]T(nil), callbacks...)
	mu.Unlock()
	return out
}

func (s *Sensor) snapshotMetadata() types.ComponentMetadata {
	s.metadataLock.Lock()
	metadata := s.componentMetadata
	s.metadataLock.Unlock()
	return metadata
}

func (s *Sensor) snapshotLoggers() []types.Logger {
	s.loggersLock.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.loggersLock.Unlock()
	return loggers
}

// decorateCallbacks appends the counter-keeping callbacks after the caller's options.
func (s *Sensor) decorateCallbacks(options ...types.Option[types.Sensor]) []types.Option[types.Sensor] {
	options = append(options, s.decorateCircuitBreakerCallbacks()...)
	options = append(options, s.decorateHTTPClientCallbacks()...)

	options = append(
		options,
		WithOnSendFunc(func(c types.ComponentMetadata, event types.Event) {
			s.counters.sent.Add(1)
		}),
		WithOnSuppressedFunc(func(c types.ComponentMetadata, reason string) {
			s.counters.suppressed.Add(1)
			s.NotifyLoggers(types.DebugLevel, "Send suppressed", "component", c, "reason", reason)
		}),
		WithOnSendSuccessFunc(func(c types.ComponentMetadata, status int, elapsed time.Duration) {
			s.counters.succeeded.Add(1)
		}),
		WithOnSendErrorFunc(func(c types.ComponentMetadata, err error) {
			s.counters.failed.Add(1)
		}),
		WithOnUncaughtErrorFunc(func(c types.ComponentMetadata, message string) {
			s.counters.uncaught.Add(1)
		}),
	)

	return options
}
