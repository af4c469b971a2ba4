package sensor

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// RegisterOnHTTPClientRequestStart registers callbacks fired before each HTTP attempt.
func (s *Sensor) RegisterOnHTTPClientRequestStart(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnHTTPClientRequestStart = append(s.OnHTTPClientRequestStart, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnHTTPClientRequestStart(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnHTTPClientRequestStart) {
		if cb == nil {
			continue
		}
		cb(c)
	}
}

// RegisterOnHTTPClientResponseReceived registers callbacks receiving each response status.
func (s *Sensor) RegisterOnHTTPClientResponseReceived(callback ...func(types.ComponentMetadata, int)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnHTTPClientResponseReceived = append(s.OnHTTPClientResponseReceived, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnHTTPClientResponseReceived(c types.ComponentMetadata, status int) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnHTTPClientResponseReceived) {
		if cb == nil {
			continue
		}
		cb(c, status)
	}
}

// RegisterOnHTTPClientError registers callbacks for transport-level and status errors.
func (s *Sensor) RegisterOnHTTPClientError(callback ...func(types.ComponentMetadata, error)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnHTTPClientError = append(s.OnHTTPClientError, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnHTTPClientError(c types.ComponentMetadata, err error) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnHTTPClientError) {
		if cb == nil {
			continue
		}
		cb(c, err)
	}
}

// RegisterOnHTTPClientRequestComplete registers callbacks fired once a post finishes, retries included.
func (s *Sensor) RegisterOnHTTPClientRequestComplete(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnHTTPClientRequestComplete = append(s.OnHTTPClientRequestComplete, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnHTTPClientRequestComplete(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnHTTPClientRequestComplete) {
		if cb == nil {
			continue
		}
		cb(c)
	}
}

func (s *Sensor) decorateHTTPClientCallbacks() []types.Option[types.Sensor] {
	return []types.Option[types.Sensor]{
		WithOnHTTPClientRequestStartFunc(func(c types.ComponentMetadata) {
			s.counters.requests.Add(1)
		}),
	}
}
