package dispatch_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/joeydtaylor/splunklogger/pkg/internal/dispatch"
	"github.com/joeydtaylor/splunklogger/pkg/internal/forwarder"
	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingTransport struct {
	mu     sync.Mutex
	events []types.Event
}

func (r *recordingTransport) Send(_ context.Context, event types.Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *recordingTransport) Wait()                                         {}
func (r *recordingTransport) Close(context.Context) error                   { return nil }
func (r *recordingTransport) ConnectLogger(...types.Logger)                 {}
func (r *recordingTransport) ConnectSensor(...types.Sensor)                 {}
func (r *recordingTransport) GetComponentMetadata() types.ComponentMetadata { return types.ComponentMetadata{} }
func (r *recordingTransport) SetComponentMetadata(string, string)           {}

func (r *recordingTransport) sent() []map[string]interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]map[string]interface{}, len(r.events))
	for i, e := range r.events {
		out[i] = e.Event
	}
	return out
}

type call struct {
	level string
	args  []interface{}
}

type recordingConsole struct {
	calls []call
}

func (c *recordingConsole) Debug(args ...interface{}) { c.calls = append(c.calls, call{"debug", args}) }
func (c *recordingConsole) Info(args ...interface{})  { c.calls = append(c.calls, call{"info", args}) }
func (c *recordingConsole) Warn(args ...interface{})  { c.calls = append(c.calls, call{"warn", args}) }
func (c *recordingConsole) Error(args ...interface{}) { c.calls = append(c.calls, call{"error", args}) }

func setup(t *testing.T, dopts []types.Option[types.Dispatcher], sopts ...settings.Option) (*dispatch.Dispatcher, *recordingTransport, *recordingConsole, *settings.Store) {
	t.Helper()
	base := []settings.Option{settings.WithEndpoint("http://collector"), settings.WithToken("tok")}
	store, err := settings.New(append(base, sopts...)...)
	if err != nil {
		t.Fatalf("settings.New: %v", err)
	}
	rt := &recordingTransport{}
	console := &recordingConsole{}
	fwd := forwarder.NewForwarder(context.Background(), store, rt)
	d := dispatch.NewDispatcher(store, fwd, append([]types.Option[types.Dispatcher]{dispatch.WithConsole(console)}, dopts...)...)
	return d, rt, console, store
}

func TestDispatch_SeverityGate(t *testing.T) {
	for _, minLevel := range types.Severities() {
		for _, level := range types.Severities() {
			d, rt, console, _ := setup(t, nil, settings.WithLevel(minLevel.String()))

			switch level {
			case types.SeverityDebug:
				d.Debug("m")
			case types.SeverityInfo:
				d.Info("m")
			case types.SeverityWarn:
				d.Warn("m")
			case types.SeverityError:
				d.Error("m")
			}

			sent := rt.sent()
			want := level >= minLevel
			if (len(sent) == 1) != want || len(sent) > 1 {
				t.Fatalf("level %s, min %s: expected send=%v, got %d events", level, minLevel, want, len(sent))
			}
			if want && sent[0]["level"] != level.String() {
				t.Fatalf("level %s, min %s: unexpected event %+v", level, minLevel, sent[0])
			}
			if len(console.calls) != 1 {
				t.Fatalf("level %s, min %s: console must see every call, got %d", level, minLevel, len(console.calls))
			}
		}
	}
}

type nilPointerError struct{ msg string }

func (e *nilPointerError) Error() string { return e.msg }

func TestDispatch_NilPointerErrorDoesNotPanic(t *testing.T) {
	d, rt, _, _ := setup(t, nil, settings.WithSendConsoleErrors(true))

	var e *nilPointerError
	d.Error(e)
	d.Warn(e, "context")

	sent := rt.sent()
	if len(sent) != 2 {
		t.Fatalf("expected 2 events, got %+v", sent)
	}
	if _, ok := sent[0]["message"]; ok || sent[0]["level"] != "ERROR" {
		t.Fatalf("nil error must degrade to an empty payload, got %+v", sent[0])
	}
	if sent[1]["1"] != "context" || sent[1]["level"] != "WARN" {
		t.Fatalf("unexpected aggregate event %+v", sent[1])
	}
}

type counts map[string]int

func TestDispatch_TypedMapsAreFields(t *testing.T) {
	d, rt, _, _ := setup(t, nil, settings.WithFields(map[string]interface{}{"app": "web", "b": 0}))

	d.Info(map[string]int{"b": 2})
	d.Warn(counts{"retries": 3})

	sent := rt.sent()
	if len(sent) != 2 {
		t.Fatalf("expected 2 events, got %+v", sent)
	}
	if sent[0]["b"] != 2 || sent[0]["app"] != "web" || sent[0]["level"] != "INFO" {
		t.Fatalf("map[string]int must merge as fields, got %+v", sent[0])
	}
	if _, ok := sent[0]["message"]; ok {
		t.Fatalf("map payload must not become a message: %+v", sent[0])
	}
	if sent[1]["retries"] != 3 || sent[1]["level"] != "WARN" {
		t.Fatalf("named map type must merge as fields, got %+v", sent[1])
	}
}

func TestDispatch_ConsoleReceivesOriginalArgs(t *testing.T) {
	d, _, console, _ := setup(t, nil)

	err := errors.New("bad")
	d.Warn("count", 3, err)
	d.Log("plain")

	if len(console.calls) != 2 {
		t.Fatalf("expected 2 console calls, got %d", len(console.calls))
	}
	first := console.calls[0]
	if first.level != "warn" || len(first.args) != 3 || first.args[1] != 3 || first.args[2] != err {
		t.Fatalf("unexpected console call %+v", first)
	}
	if console.calls[1].level != "info" {
		t.Fatalf("Log must echo at info, got %s", console.calls[1].level)
	}
}

func TestDispatch_LogToConsoleOff(t *testing.T) {
	d, rt, console, _ := setup(t, nil, settings.WithLogToConsole(false))

	d.Info("quiet")

	if len(console.calls) != 0 {
		t.Fatalf("expected no console output")
	}
	if len(rt.sent()) != 1 {
		t.Fatalf("expected the event to be forwarded")
	}
}

func TestDispatch_LoggingDisabled(t *testing.T) {
	d, rt, console, _ := setup(t, nil, settings.WithLoggingEnabled(false))

	d.Error("x")

	if len(console.calls) != 1 || len(rt.sent()) != 0 {
		t.Fatalf("expected console only, got console=%d sent=%d", len(console.calls), len(rt.sent()))
	}
}

func TestDispatch_Payloads(t *testing.T) {
	d, rt, _, _ := setup(t, nil)

	d.Info("hello")
	d.Info(map[string]interface{}{"user": "ann", "level": "custom"})
	d.Info("a", "b")
	d.Info()

	sent := rt.sent()
	if sent[0]["message"] != "hello" || sent[0]["level"] != "INFO" {
		t.Fatalf("unexpected text event %+v", sent[0])
	}
	if sent[1]["user"] != "ann" || sent[1]["level"] != "INFO" {
		t.Fatalf("unexpected map event %+v", sent[1])
	}
	if sent[2]["0"] != "a" || sent[2]["1"] != "b" {
		t.Fatalf("unexpected aggregate event %+v", sent[2])
	}
	if len(sent[3]) != 1 || sent[3]["level"] != "INFO" {
		t.Fatalf("unexpected empty event %+v", sent[3])
	}
}

func TestDispatch_ErrorPayloads(t *testing.T) {
	d, rt, console, store := setup(t, nil)

	d.Error(errors.New("hidden"))
	if len(rt.sent()) != 0 || len(console.calls) != 1 {
		t.Fatalf("error payload must only reach the console when console errors are off")
	}

	store.SetSendConsoleErrors(true)
	d.Error(errors.New("shown"), "extra")

	sent := rt.sent()
	if len(sent) != 1 {
		t.Fatalf("expected one event, got %d", len(sent))
	}
	if sent[0]["message"] != "shown" || sent[0]["level"] != "ERROR" || sent[0]["stack"] == "" {
		t.Fatalf("unexpected error event %+v", sent[0])
	}
	if _, ok := sent[0]["0"]; ok {
		t.Fatalf("other payload content must be discarded")
	}
}

func TestGetLogger_TagsName(t *testing.T) {
	d, rt, _, _ := setup(t, nil, settings.WithFields(map[string]interface{}{"app": "web"}))

	auth := d.GetLogger("auth")
	auth.Info("hello")
	auth.Warn(map[string]interface{}{"user": "ann"})
	auth.Log("again")

	sent := rt.sent()
	if len(sent) != 3 {
		t.Fatalf("expected 3 events, got %d", len(sent))
	}
	if sent[0]["logger"] != "auth" || sent[0]["message"] != "hello" || sent[0]["app"] != "web" {
		t.Fatalf("unexpected event %+v", sent[0])
	}
	if sent[1]["logger"] != "auth" || sent[1]["user"] != "ann" || sent[1]["level"] != "WARN" {
		t.Fatalf("unexpected event %+v", sent[1])
	}
	if sent[2]["level"] != "INFO" {
		t.Fatalf("Log must forward at INFO, got %v", sent[2]["level"])
	}
}

func TestGetLogger_LegacyField(t *testing.T) {
	d, rt, _, _ := setup(t, []types.Option[types.Dispatcher]{dispatch.WithLegacyLoggerField(true)})

	l := d.GetLogger("auth")
	l.Info("hello")
	l.Info("a", "b")

	sent := rt.sent()
	if sent[0]["logger"] != "hello" {
		t.Fatalf("legacy logger field must hold the payload, got %v", sent[0]["logger"])
	}
	args, ok := sent[1]["logger"].([]interface{})
	if !ok || len(args) != 2 || args[0] != "a" {
		t.Fatalf("legacy logger field must hold all arguments, got %v", sent[1]["logger"])
	}
}

func TestGetLogger_SharesGate(t *testing.T) {
	d, rt, _, _ := setup(t, nil, settings.WithLevel("ERROR"))

	l := d.GetLogger("jobs")
	l.Warn("skip")
	l.Error("keep")

	sent := rt.sent()
	if len(sent) != 1 || sent[0]["message"] != "keep" {
		t.Fatalf("unexpected events %+v", sent)
	}
}

func TestLogContext_Environment(t *testing.T) {
	d, rt, _, _ := setup(t, nil, settings.WithIncludeURL(true))

	ctx := types.ContextWithEnvironment(context.Background(), types.StaticEnvironment{CurrentURL: "https://app/page"})
	d.LogContext(ctx, types.SeverityInfo, "page view")

	sent := rt.sent()
	if len(sent) != 1 || sent[0]["url"] != "https://app/page" {
		t.Fatalf("unexpected events %+v", sent)
	}
}

func TestDispatch_ZapConsole(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d, _, _, _ := setup(t, []types.Option[types.Dispatcher]{dispatch.WithConsole(zap.New(core).Sugar())})

	d.Warn("disk ", "low")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one console entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel || entries[0].Message != "disk low" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}
