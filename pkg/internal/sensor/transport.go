package sensor

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// RegisterOnSend registers callbacks fired when an event is handed to the network.
func (s *Sensor) RegisterOnSend(callback ...func(types.ComponentMetadata, types.Event)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnSend = append(s.OnSend, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnSend invokes send callbacks.
func (s *Sensor) InvokeOnSend(c types.ComponentMetadata, event types.Event) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnSend) {
		if cb == nil {
			continue
		}
		cb(c, event)
	}
}

// RegisterOnSuppressed registers callbacks fired when a send is skipped without a request.
func (s *Sensor) RegisterOnSuppressed(callback ...func(types.ComponentMetadata, string)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnSuppressed = append(s.OnSuppressed, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnSuppressed invokes suppression callbacks with the reason.
func (s *Sensor) InvokeOnSuppressed(c types.ComponentMetadata, reason string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnSuppressed) {
		if cb == nil {
			continue
		}
		cb(c, reason)
	}
}

// RegisterOnSendSuccess registers callbacks for 2xx completions.
func (s *Sensor) RegisterOnSendSuccess(callback ...func(types.ComponentMetadata, int, time.Duration)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnSendSuccess = append(s.OnSendSuccess, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnSendSuccess(c types.ComponentMetadata, status int, elapsed time.Duration) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnSendSuccess) {
		if cb == nil {
			continue
		}
		cb(c, status, elapsed)
	}
}

// RegisterOnSendError registers callbacks for failed completions.
func (s *Sensor) RegisterOnSendError(callback ...func(types.ComponentMetadata, error)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnSendError = append(s.OnSendError, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnSendError(c types.ComponentMetadata, err error) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnSendError) {
		if cb == nil {
			continue
		}
		cb(c, err)
	}
}
