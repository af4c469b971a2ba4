// Package dispatch intercepts application log calls. Every call is echoed to the
// console when configured, gated on the minimum level and handed to the forwarder.
package dispatch

import (
	"context"
	"sync"

	"github.com/joeydtaylor/splunklogger/pkg/internal/internallogger"
	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/internal/utils"
)

// Dispatcher implements types.Dispatcher.
type Dispatcher struct {
	componentMetadata types.ComponentMetadata
	store             *settings.Store
	forwarder         types.Forwarder

	configLock        sync.Mutex
	console           types.Console
	legacyLoggerField bool
	loggers           []types.Logger
}

// NewDispatcher creates a dispatcher reading store and forwarding through fwd. The
// console defaults to a development zap logger on stdout.
func NewDispatcher(store *settings.Store, fwd types.Forwarder, options ...types.Option[types.Dispatcher]) *Dispatcher {
	d := &Dispatcher{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "DISPATCHER",
		},
		store:     store,
		forwarder: fwd,
	}

	for _, option := range options {
		option(d)
	}

	if d.console == nil {
		d.console = internallogger.NewLogger(
			internallogger.LoggerWithLevel("debug"),
			internallogger.LoggerWithDevelopment(true),
		).Console()
	}

	return d
}

func (d *Dispatcher) Log(args ...interface{}) {
	d.dispatch(context.Background(), types.SeverityInfo, "", args)
}

func (d *Dispatcher) Debug(args ...interface{}) {
	d.dispatch(context.Background(), types.SeverityDebug, "", args)
}

func (d *Dispatcher) Info(args ...interface{}) {
	d.dispatch(context.Background(), types.SeverityInfo, "", args)
}

func (d *Dispatcher) Warn(args ...interface{}) {
	d.dispatch(context.Background(), types.SeverityWarn, "", args)
}

func (d *Dispatcher) Error(args ...interface{}) {
	d.dispatch(context.Background(), types.SeverityError, "", args)
}

// LogContext logs at level. Values in ctx, such as an environment, reach the event.
func (d *Dispatcher) LogContext(ctx context.Context, level types.Severity, args ...interface{}) {
	d.dispatch(ctx, level, "", args)
}

// GetLogger returns a sub-logger named name. Sub-loggers share the dispatcher's
// settings, console and forwarder.
func (d *Dispatcher) GetLogger(name string) types.LeveledLogger {
	return &Logger{name: name, dispatcher: d}
}
