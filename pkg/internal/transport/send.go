package transport

import (
	"context"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/codec"
	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// Send posts event unless a precondition fails or the breaker is open. Suppressed sends
// make no request and leave the breaker untouched. Values in ctx reach the request;
// its cancellation does not, only Close aborts in-flight posts.
func (t *Transport) Send(ctx context.Context, event types.Event) {
	snap := t.store.Snapshot()

	switch {
	case snap.Token == "" || snap.Endpoint == "":
		t.notifySuppressed(types.SuppressedNotConfigured)
		return
	case !snap.LoggingEnabled:
		t.notifySuppressed(types.SuppressedDisabled)
		return
	}

	cb := t.breakerFor(snap)
	if cb != nil && !cb.Allow() {
		t.notifySuppressed(types.SuppressedCircuitOpen)
		return
	}

	encoder, err := codec.NewBodyEncoder(snap.Compression)
	if err != nil {
		t.NotifyLoggers(types.WarnLevel, "Transport: invalid compression", "component", t.GetComponentMetadata(), "error", err)
		t.notifySuppressed(types.SuppressedEncodeFailure)
		return
	}
	body, encoding, err := encoder.Encode(event)
	if err != nil {
		t.NotifyLoggers(types.WarnLevel, "Transport: dropping event that cannot be encoded", "component", t.GetComponentMetadata(), "error", err)
		t.notifySuppressed(types.SuppressedEncodeFailure)
		return
	}

	headers := map[string]string{
		"Authorization": snap.AuthScheme + " " + snap.Token,
	}
	if encoding != "" {
		headers["Content-Encoding"] = encoding
	}
	if snap.RequestChannel != "" {
		headers[HeaderRequestChannel] = snap.RequestChannel
	}

	t.closeLock.RLock()
	if t.closed.Load() {
		t.closeLock.RUnlock()
		t.notifySuppressed(types.SuppressedClosed)
		return
	}
	t.inflight.Add(1)
	t.closeLock.RUnlock()

	t.syncClient(snap)
	t.notifySend(event)
	go t.post(ctx, cb, snap.Endpoint, body, headers)
}

func (t *Transport) post(ctx context.Context, cb types.CircuitBreaker, endpoint string, body []byte, headers map[string]string) {
	defer t.inflight.Done()

	postCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(t.ctx, cancel)
	defer stop()
	defer cancel()

	start := time.Now()
	status, err := t.client.Post(postCtx, endpoint, body, headers)
	elapsed := time.Since(start)

	if err != nil {
		if cb != nil {
			cb.RecordError()
		}
		t.notifySendError(err)
		t.NotifyLoggers(types.DebugLevel, "Transport: send failed", "component", t.GetComponentMetadata(), "status", status, "error", err, "elapsed", elapsed)
		return
	}

	if cb != nil {
		cb.RecordSuccess()
	}
	t.notifySendSuccess(status, elapsed)
	t.NotifyLoggers(types.DebugLevel, "Transport: send succeeded", "component", t.GetComponentMetadata(), "status", status, "elapsed", elapsed)
}

// breakerFor keeps the breaker in step with the configured threshold. A changed
// threshold starts a fresh count; clearing it drops the breaker.
func (t *Transport) breakerFor(snap settings.Snapshot) types.CircuitBreaker {
	t.breakerLock.Lock()
	defer t.breakerLock.Unlock()

	if snap.ErrorThreshold == nil {
		t.breaker = nil
		return nil
	}

	threshold := *snap.ErrorThreshold
	switch {
	case t.breaker == nil:
		t.breaker = t.newBreaker(threshold)
	case t.breaker.Threshold() != threshold:
		t.breaker.SetThreshold(threshold)
	}
	return t.breaker
}
