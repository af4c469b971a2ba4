package dispatch

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// NotifyLoggers emits a log entry to all configured loggers.
func (d *Dispatcher) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	d.configLock.Lock()
	loggers := append([]types.Logger(nil), d.loggers...)
	d.configLock.Unlock()

	for _, logger := range loggers {
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
