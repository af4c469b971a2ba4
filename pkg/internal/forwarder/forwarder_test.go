package forwarder_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/errorcapture"
	"github.com/joeydtaylor/splunklogger/pkg/internal/forwarder"
	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

type recordingTransport struct {
	mu     sync.Mutex
	events []types.Event
	closed bool
}

func (r *recordingTransport) Send(_ context.Context, event types.Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *recordingTransport) Wait() {}

func (r *recordingTransport) Close(context.Context) error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

func (r *recordingTransport) ConnectLogger(...types.Logger)                 {}
func (r *recordingTransport) ConnectSensor(...types.Sensor)                 {}
func (r *recordingTransport) GetComponentMetadata() types.ComponentMetadata { return types.ComponentMetadata{} }
func (r *recordingTransport) SetComponentMetadata(string, string)           {}

func (r *recordingTransport) sent() []types.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.Event(nil), r.events...)
}

func setup(t *testing.T, opts ...settings.Option) (*forwarder.Forwarder, *recordingTransport) {
	t.Helper()
	base := []settings.Option{settings.WithEndpoint("http://collector"), settings.WithToken("tok")}
	store, err := settings.New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("settings.New: %v", err)
	}
	rt := &recordingTransport{}
	return forwarder.NewForwarder(context.Background(), store, rt), rt
}

func TestSendMessage_RequiresConfiguration(t *testing.T) {
	f, rt := setup(t, settings.WithToken(""))

	f.SendMessage(context.Background(), types.Text("dropped"))

	if len(rt.sent()) != 0 {
		t.Fatalf("expected nothing sent")
	}
	if _, ok := f.LastLog(); ok {
		t.Fatalf("expected no last log before an accepted send")
	}
}

func TestSendMessage_NoLevel(t *testing.T) {
	f, rt := setup(t)

	before := time.Now()
	f.SendMessage(context.Background(), types.Text("hello"))

	events := rt.sent()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	if events[0].Event["message"] != "hello" {
		t.Fatalf("unexpected event %+v", events[0].Event)
	}
	if _, ok := events[0].Event["level"]; ok {
		t.Fatalf("SendMessage must not add a level")
	}
	last, ok := f.LastLog()
	if !ok || last.Before(before) {
		t.Fatalf("unexpected last log %v %v", last, ok)
	}
}

func TestSendLevel_TimestampMatchesLastLog(t *testing.T) {
	f, rt := setup(t, settings.WithIncludeTimestamp(true))

	f.SendLevel(context.Background(), types.SeverityWarn, types.Fields(map[string]interface{}{"a": 1}))

	events := rt.sent()
	if len(events) != 1 || events[0].Event["level"] != "WARN" || events[0].Event["a"] != 1 {
		t.Fatalf("unexpected events %+v", events)
	}
	last, _ := f.LastLog()
	if events[0].Time == nil || *events[0].Time != float64(last.UnixMilli())/1000 {
		t.Fatalf("expected time from last log")
	}
}

func TestSend_ErrorPayloadGate(t *testing.T) {
	f, rt := setup(t)
	f.SendLevel(context.Background(), types.SeverityError, types.ErrorPayload(errors.New("nope")))
	if len(rt.sent()) != 0 {
		t.Fatalf("error payload must not be sent when console errors are off")
	}

	f.Settings().SetSendConsoleErrors(true)
	f.SendLevel(context.Background(), types.SeverityError, types.ErrorPayload(errors.New("yes")))
	events := rt.sent()
	if len(events) != 1 || events[0].Event["message"] != "yes" {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestSend_Environment(t *testing.T) {
	f, rt := setup(t, settings.WithIncludeURL(true), settings.WithIncludeUserAgent(true))
	f.SetEnvironment(types.StaticEnvironment{CurrentURL: "https://default", Agent: "agent/1"})

	f.SendMessage(context.Background(), types.Text("a"))
	ctx := types.ContextWithEnvironment(context.Background(), types.StaticEnvironment{CurrentURL: "https://request", Agent: "curl"})
	f.SendMessage(ctx, types.Text("b"))

	events := rt.sent()
	if events[0].Event["url"] != "https://default" || events[0].Event["userAgent"] != "agent/1" {
		t.Fatalf("unexpected default environment %+v", events[0].Event)
	}
	if events[1].Event["url"] != "https://request" || events[1].Event["userAgent"] != "curl" {
		t.Fatalf("unexpected context environment %+v", events[1].Event)
	}
}

func TestAttach_SkippedWhenConsoleErrorsOff(t *testing.T) {
	f, _ := setup(t)
	r := errorcapture.NewRegistry()

	f.Attach(r)

	if r.Observers() != 0 {
		t.Fatalf("expected no observer, got %d", r.Observers())
	}
}

func TestAttach_ForwardsUncaughtErrors(t *testing.T) {
	f, rt := setup(t, settings.WithSendConsoleErrors(true), settings.WithLevel("ERROR"))

	var prior []types.UncaughtError
	r := errorcapture.NewRegistry(errorcapture.WithObserver(func(e types.UncaughtError) { prior = append(prior, e) }))

	f.Attach(r)
	f.Attach(r)
	if r.Observers() != 2 {
		t.Fatalf("expected the forwarder observer once, got %d observers", r.Observers())
	}

	in := types.UncaughtError{Message: "x is undefined", URL: "main.go", Line: 12, Column: 3, Stack: "trace"}
	r.Report(in)

	events := rt.sent()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	ev := events[0].Event
	if ev["level"] != "ERROR" || ev["message"] != "x is undefined" || ev["line"] != 12 || ev["col"] != 3 || ev["stack"] != "trace" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if len(prior) != 1 || prior[0] != in {
		t.Fatalf("prior observer must still receive the original error")
	}
}

func TestAttach_RechecksSettingsAtReport(t *testing.T) {
	f, rt := setup(t, settings.WithSendConsoleErrors(true))
	r := errorcapture.NewRegistry()
	f.Attach(r)

	f.Settings().SetSendConsoleErrors(false)
	r.Report(types.UncaughtError{Message: "a"})

	f.Settings().SetSendConsoleErrors(true).SetLoggingEnabled(false)
	r.Report(types.UncaughtError{Message: "b"})

	if len(rt.sent()) != 0 {
		t.Fatalf("expected no events, got %d", len(rt.sent()))
	}
}

func TestAttach_StackFromError(t *testing.T) {
	f, rt := setup(t, settings.WithSendConsoleErrors(true))
	r := errorcapture.NewRegistry()
	f.Attach(r)

	r.Report(types.UncaughtError{Err: errors.New("wrapped")})

	events := rt.sent()
	if len(events) != 1 || events[0].Event["message"] != "wrapped" || events[0].Event["stack"] == "" {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestClose_ClosesTransport(t *testing.T) {
	f, rt := setup(t)
	if err := f.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !rt.closed {
		t.Fatalf("expected transport to be closed")
	}
}
