package dispatch

import (
	"context"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/logschema"
)

func (d *Dispatcher) dispatch(ctx context.Context, level types.Severity, name string, args []interface{}) {
	if d.store.LogToConsole() {
		d.toConsole(level, args)
	}

	if !d.store.LoggingEnabled() || !d.store.IsSeverityEnabled(level) {
		return
	}

	p := types.PayloadFromArgs(args...)
	if p.IsError() && !d.store.SendConsoleErrors() {
		d.NotifyLoggers(types.DebugLevel, "dispatch: error payload not forwarded", "component", d.GetComponentMetadata(), "level", level.String())
		return
	}

	if name != "" {
		p = withLoggerField(p, d.loggerFieldValue(name, args))
	}

	d.forwarder.SendLevel(ctx, level, p)
}

func (d *Dispatcher) toConsole(level types.Severity, args []interface{}) {
	d.configLock.Lock()
	console := d.console
	d.configLock.Unlock()

	switch level {
	case types.SeverityDebug:
		console.Debug(args...)
	case types.SeverityInfo:
		console.Info(args...)
	case types.SeverityWarn:
		console.Warn(args...)
	case types.SeverityError:
		console.Error(args...)
	}
}

// loggerFieldValue is the logger name, or in legacy mode the raw call arguments:
// the single argument, or all of them when there are several.
func (d *Dispatcher) loggerFieldValue(name string, args []interface{}) interface{} {
	d.configLock.Lock()
	legacy := d.legacyLoggerField
	d.configLock.Unlock()

	if !legacy {
		return name
	}
	switch len(args) {
	case 0:
		return map[string]interface{}{}
	case 1:
		if args[0] == nil {
			return map[string]interface{}{}
		}
		return args[0]
	default:
		return args
	}
}

// withLoggerField converts p to the field variant with the logger key set.
func withLoggerField(p types.Payload, value interface{}) types.Payload {
	fields := map[string]interface{}{}
	switch p.Kind {
	case types.PayloadError:
		fields[logschema.EventMessage] = p.Error.Message
		fields[logschema.EventStack] = p.Error.Stack
	case types.PayloadFields:
		for k, v := range p.Fields {
			fields[k] = v
		}
	case types.PayloadText:
		fields[logschema.EventMessage] = p.Text
	}
	fields[logschema.EventLogger] = value
	return types.Fields(fields)
}
