package forwarder

import (
	"context"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/logschema"
)

// Attach appends the uncaught error observer to registry when console errors are
// forwarded. The observer is registered at most once per forwarder; an Attach made
// while console errors are off registers nothing and can be repeated later.
func (f *Forwarder) Attach(registry types.ErrorRegistry) {
	if registry == nil || !f.store.SendConsoleErrors() {
		return
	}
	f.attachOnce.Do(func() {
		registry.Register(f.observeUncaught)
		f.NotifyLoggers(types.DebugLevel, "Attach: uncaught error observer registered",
			"component", f.GetComponentMetadata(), "registry", registry.GetComponentMetadata())
	})
}

// observeUncaught forwards an uncaught error at ERROR regardless of the minimum level.
func (f *Forwarder) observeUncaught(e types.UncaughtError) {
	snap := f.store.Snapshot()
	if !snap.SendConsoleErrors || !snap.LoggingEnabled {
		return
	}

	stack, message := e.Stack, e.Message
	if cause := types.ErrorPayload(e.Err); cause.IsError() {
		if stack == "" {
			stack = cause.Error.Stack
		}
		if message == "" {
			message = cause.Error.Message
		}
	}

	ctx := context.Background()
	if e.URL != "" {
		ctx = types.ContextWithEnvironment(ctx, uncaughtEnvironment{url: e.URL, fallback: f.environment(ctx)})
	}

	f.SendLevel(ctx, types.SeverityError, types.Fields(map[string]interface{}{
		logschema.EventMessage: message,
		logschema.EventLine:    e.Line,
		logschema.EventColumn:  e.Column,
		logschema.EventStack:   stack,
	}))
}

// uncaughtEnvironment reports the location an error was raised from as its url.
type uncaughtEnvironment struct {
	url      string
	fallback types.Environment
}

func (e uncaughtEnvironment) URL() string { return e.url }

func (e uncaughtEnvironment) UserAgent() string {
	if e.fallback == nil {
		return ""
	}
	return e.fallback.UserAgent()
}
