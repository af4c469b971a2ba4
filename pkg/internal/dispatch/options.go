package dispatch

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// WithConsole sets the console log calls are echoed to when logToConsole is on.
func WithConsole(console types.Console) types.Option[types.Dispatcher] {
	return func(d types.Dispatcher) {
		d.SetConsole(console)
	}
}

// WithLegacyLoggerField restores the older named logger output, where the logger
// field holds the logged value rather than the logger name.
func WithLegacyLoggerField(legacy bool) types.Option[types.Dispatcher] {
	return func(d types.Dispatcher) {
		d.SetLegacyLoggerField(legacy)
	}
}

func WithLogger(loggers ...types.Logger) types.Option[types.Dispatcher] {
	return func(d types.Dispatcher) {
		d.ConnectLogger(loggers...)
	}
}

func WithComponentMetadata(name string, id string) types.Option[types.Dispatcher] {
	return func(d types.Dispatcher) {
		d.SetComponentMetadata(name, id)
	}
}
