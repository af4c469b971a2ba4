package sensor

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// RegisterOnCircuitBreakerTrip registers callbacks for circuit breaker trip events.
func (s *Sensor) RegisterOnCircuitBreakerTrip(callback ...func(types.ComponentMetadata, int64, int)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnCircuitBreakerTrip = append(s.OnCircuitBreakerTrip, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnCircuitBreakerTrip invokes callbacks for circuit breaker trips.
func (s *Sensor) InvokeOnCircuitBreakerTrip(cmd types.ComponentMetadata, time int64, failures int) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnCircuitBreakerTrip) {
		if cb == nil {
			continue
		}
		cb(cmd, time, failures)
	}
}

// RegisterOnCircuitBreakerReset registers callbacks for circuit breaker reset events.
func (s *Sensor) RegisterOnCircuitBreakerReset(callback ...func(types.ComponentMetadata, int64)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnCircuitBreakerReset = append(s.OnCircuitBreakerReset, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnCircuitBreakerReset invokes callbacks for circuit breaker resets.
func (s *Sensor) InvokeOnCircuitBreakerReset(cmd types.ComponentMetadata, time int64) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnCircuitBreakerReset) {
		if cb == nil {
			continue
		}
		cb(cmd, time)
	}
}

// RegisterOnCircuitBreakerRecordError registers callbacks for recorded errors.
func (s *Sensor) RegisterOnCircuitBreakerRecordError(callback ...func(types.ComponentMetadata, int64)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnCircuitBreakerRecordError = append(s.OnCircuitBreakerRecordError, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnCircuitBreakerRecordError invokes callbacks for recorded errors.
func (s *Sensor) InvokeOnCircuitBreakerRecordError(cmd types.ComponentMetadata, time int64) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnCircuitBreakerRecordError) {
		if cb == nil {
			continue
		}
		cb(cmd, time)
	}
}

// RegisterOnCircuitBreakerAllow registers callbacks for allow events.
func (s *Sensor) RegisterOnCircuitBreakerAllow(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnCircuitBreakerAllow = append(s.OnCircuitBreakerAllow, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnCircuitBreakerAllow invokes callbacks for allow events.
func (s *Sensor) InvokeOnCircuitBreakerAllow(cmd types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnCircuitBreakerAllow) {
		if cb == nil {
			continue
		}
		cb(cmd)
	}
}

func (s *Sensor) decorateCircuitBreakerCallbacks() []types.Option[types.Sensor] {
	return []types.Option[types.Sensor]{
		WithCircuitBreakerTripFunc(func(c types.ComponentMetadata, time int64, failures int) {
			s.counters.trips.Add(1)
			s.counters.lastTrip.Store(time)
		}),
		WithCircuitBreakerResetFunc(func(c types.ComponentMetadata, time int64) {
			s.counters.resets.Add(1)
		}),
	}
}
