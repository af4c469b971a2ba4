package transport

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// NotifyLoggers emits a log entry to all configured loggers.
func (t *Transport) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range t.snapshotLoggers() {
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

func (t *Transport) notifySend(event types.Event) {
	metadata := t.GetComponentMetadata()
	for _, s := range t.snapshotSensors() {
		s.InvokeOnSend(metadata, event)
	}
}

func (t *Transport) notifySuppressed(reason string) {
	metadata := t.GetComponentMetadata()
	for _, s := range t.snapshotSensors() {
		s.InvokeOnSuppressed(metadata, reason)
	}
}

func (t *Transport) notifySendSuccess(status int, elapsed time.Duration) {
	metadata := t.GetComponentMetadata()
	for _, s := range t.snapshotSensors() {
		s.InvokeOnSendSuccess(metadata, status, elapsed)
	}
}

func (t *Transport) notifySendError(err error) {
	metadata := t.GetComponentMetadata()
	for _, s := range t.snapshotSensors() {
		s.InvokeOnSendError(metadata, err)
	}
}

func (t *Transport) snapshotLoggers() []types.Logger {
	t.configLock.Lock()
	defer t.configLock.Unlock()
	return append([]types.Logger(nil), t.loggers...)
}

func (t *Transport) snapshotSensors() []types.Sensor {
	t.configLock.Lock()
	defer t.configLock.Unlock()
	return append([]types.Sensor(nil), t.sensors...)
}
