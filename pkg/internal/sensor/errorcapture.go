package sensor

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// RegisterOnUncaughtError registers callbacks fired when a captured runtime error is forwarded.
func (s *Sensor) RegisterOnUncaughtError(callback ...func(types.ComponentMetadata, string)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnUncaughtError = append(s.OnUncaughtError, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnUncaughtError(c types.ComponentMetadata, message string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnUncaughtError) {
		if cb == nil {
			continue
		}
		cb(c, message)
	}
}
