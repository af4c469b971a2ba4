package builder

import (
	"github.com/joeydtaylor/splunklogger/pkg/internal/dispatch"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// NewDispatcher creates the application-facing logger.
func NewDispatcher(store *Settings, fwd Forwarder, options ...types.Option[types.Dispatcher]) *dispatch.Dispatcher {
	return dispatch.NewDispatcher(store, fwd, options...)
}

// DispatcherWithConsole sets where log calls are echoed. *zap.SugaredLogger qualifies.
func DispatcherWithConsole(console Console) types.Option[types.Dispatcher] {
	return dispatch.WithConsole(console)
}

// DispatcherWithLegacyLoggerField puts the logged value, not the logger name, in
// the logger field of named logger events.
func DispatcherWithLegacyLoggerField(legacy bool) types.Option[types.Dispatcher] {
	return dispatch.WithLegacyLoggerField(legacy)
}

func DispatcherWithLogger(loggers ...types.Logger) types.Option[types.Dispatcher] {
	return dispatch.WithLogger(loggers...)
}

func DispatcherWithComponentMetadata(name string, id string) types.Option[types.Dispatcher] {
	return dispatch.WithComponentMetadata(name, id)
}
