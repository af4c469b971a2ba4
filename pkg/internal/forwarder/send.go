package forwarder

import (
	"context"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/composer"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// SendMessage forwards p as is. No level field is added.
func (f *Forwarder) SendMessage(ctx context.Context, p types.Payload) {
	f.send(ctx, p, types.SeverityDebug, false)
}

// SendLevel forwards p with level written into the event.
func (f *Forwarder) SendLevel(ctx context.Context, level types.Severity, p types.Payload) {
	f.send(ctx, p, level, true)
}

func (f *Forwarder) send(ctx context.Context, p types.Payload, level types.Severity, hasLevel bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	snap := f.store.Snapshot()
	if !snap.CanSend() {
		return
	}

	now := time.Now()
	f.lastLogLock.Lock()
	f.lastLog = now
	f.lastLogLock.Unlock()

	event, ok := composer.Compose(p, level, hasLevel, snap, f.environment(ctx), now)
	if !ok {
		f.NotifyLoggers(types.DebugLevel, "SendMessage: error payload not forwarded", "component", f.GetComponentMetadata())
		return
	}

	f.transport.Send(ctx, event)
}

func (f *Forwarder) environment(ctx context.Context) types.Environment {
	if env, ok := types.EnvironmentFromContext(ctx); ok {
		return env
	}
	f.configLock.Lock()
	defer f.configLock.Unlock()
	return f.env
}
