package composer_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/composer"
	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 250_000_000, time.UTC)

func snapshot(t *testing.T, opts ...settings.Option) settings.Snapshot {
	t.Helper()
	s, err := settings.New(opts...)
	if err != nil {
		t.Fatalf("settings.New: %v", err)
	}
	return s.Snapshot()
}

func TestCompose_LabelRenamesMessage(t *testing.T) {
	snap := snapshot(t, settings.WithLabels(map[string]string{"message": "msg"}))

	ev, ok := composer.Compose(types.Fields(map[string]interface{}{"message": "A test message"}), 0, false, snap, nil, fixedNow)
	if !ok {
		t.Fatalf("expected composition")
	}
	if ev.Event["msg"] != "A test message" {
		t.Fatalf("expected msg field, got %v", ev.Event)
	}
	if _, ok := ev.Event["message"]; ok {
		t.Fatalf("message key must be removed, got %v", ev.Event)
	}
}

func TestCompose_IncludeURL(t *testing.T) {
	snap := snapshot(t, settings.WithIncludeURL(true), settings.WithIncludeUserAgent(true))
	env := types.StaticEnvironment{CurrentURL: "http://example.com/page", Agent: "test-agent/1.0"}

	ev, _ := composer.Compose(types.Text("hi"), types.SeverityInfo, true, snap, env, fixedNow)
	if ev.Event["url"] != "http://example.com/page" {
		t.Fatalf("expected url, got %v", ev.Event)
	}
	if ev.Event["userAgent"] != "test-agent/1.0" {
		t.Fatalf("expected userAgent, got %v", ev.Event)
	}
}

func TestCompose_NilEnvironment(t *testing.T) {
	snap := snapshot(t, settings.WithIncludeURL(true))
	ev, ok := composer.Compose(types.EmptyPayload(), 0, false, snap, nil, fixedNow)
	if !ok || ev.Event["url"] != "" {
		t.Fatalf("expected empty url with nil environment, got %v", ev.Event)
	}
}

func TestCompose_FieldsReplaceWholesale(t *testing.T) {
	store := settings.Default().SetFields(map[string]interface{}{"a": 1})

	ev, _ := composer.Compose(types.Fields(map[string]interface{}{"b": 2}), 0, false, store.Snapshot(), nil, fixedNow)
	if len(ev.Event) != 2 || ev.Event["a"] != 1 || ev.Event["b"] != 2 {
		t.Fatalf("expected {a:1 b:2}, got %v", ev.Event)
	}

	store.SetFields(map[string]interface{}{"a": 1, "c": 3})
	ev, _ = composer.Compose(types.Fields(map[string]interface{}{"b": 2}), 0, false, store.Snapshot(), nil, fixedNow)
	if len(ev.Event) != 3 || ev.Event["a"] != 1 || ev.Event["b"] != 2 || ev.Event["c"] != 3 {
		t.Fatalf("expected {a:1 c:3 b:2}, got %v", ev.Event)
	}
}

func TestCompose_PayloadWinsOverExtraFields(t *testing.T) {
	extra := map[string]interface{}{"app": "shop"}
	snap := snapshot(t, settings.WithFields(extra))

	ev, _ := composer.Compose(types.Fields(map[string]interface{}{"app": "override"}), 0, false, snap, nil, fixedNow)
	if ev.Event["app"] != "override" {
		t.Fatalf("expected payload to win, got %v", ev.Event)
	}
	if extra["app"] != "shop" {
		t.Fatalf("composition mutated configured fields")
	}
}

func TestCompose_ErrorGate(t *testing.T) {
	p := types.ErrorPayload(errors.New("boom"))

	if _, ok := composer.Compose(p, types.SeverityError, true, snapshot(t), nil, fixedNow); ok {
		t.Fatalf("error payload must be refused when sendConsoleErrors is false")
	}

	ev, ok := composer.Compose(p, types.SeverityError, true, snapshot(t, settings.WithSendConsoleErrors(true)), nil, fixedNow)
	if !ok {
		t.Fatalf("expected error payload to compose")
	}
	if ev.Event["message"] != "boom" {
		t.Fatalf("expected message boom, got %v", ev.Event["message"])
	}
	if stack, _ := ev.Event["stack"].(string); stack == "" {
		t.Fatalf("expected stack to be populated")
	}
	if ev.Event["level"] != "ERROR" {
		t.Fatalf("expected level ERROR, got %v", ev.Event["level"])
	}
}

func TestCompose_LevelWrittenAfterLabels(t *testing.T) {
	snap := snapshot(t, settings.WithLabels(map[string]string{"level": "severity"}))

	ev, _ := composer.Compose(types.Fields(map[string]interface{}{"level": "custom"}), types.SeverityWarn, true, snap, nil, fixedNow)
	if ev.Event["level"] != "WARN" {
		t.Fatalf("expected level WARN, got %v", ev.Event["level"])
	}
	if ev.Event["severity"] != "custom" {
		t.Fatalf("expected relabeled payload level, got %v", ev.Event)
	}
}

func TestCompose_NoLevelForPlainMessage(t *testing.T) {
	ev, _ := composer.Compose(types.Text("x"), types.SeverityError, false, snapshot(t), nil, fixedNow)
	if _, ok := ev.Event["level"]; ok {
		t.Fatalf("level must be absent without a severity, got %v", ev.Event)
	}
}

func TestCompose_LabelsDeterministic(t *testing.T) {
	snap := snapshot(t, settings.WithLabels(map[string]string{"a": "b", "b": "c"}))

	for i := 0; i < 20; i++ {
		ev, _ := composer.Compose(types.Fields(map[string]interface{}{"a": 1, "b": 2}), 0, false, snap, nil, fixedNow)
		if ev.Event["c"] != 1 || len(ev.Event) != 1 {
			t.Fatalf("expected sorted application to yield {c:1}, got %v", ev.Event)
		}
	}
}

func TestCompose_TopLevelMetadata(t *testing.T) {
	snap := snapshot(t,
		settings.WithIncludeTimestamp(true),
		settings.WithSource("web"),
		settings.WithSourceType("_json"),
		settings.WithIndex("main"),
		settings.WithHost("edge-1"),
		settings.WithTag("checkout"),
	)

	ev, _ := composer.Compose(types.Text("ok"), 0, false, snap, nil, fixedNow)
	if ev.Time == nil || *ev.Time != 1709294400.25 {
		t.Fatalf("unexpected time: %v", ev.Time)
	}
	if ev.Source != "web" || ev.SourceType != "_json" || ev.Index != "main" || ev.Host != "edge-1" {
		t.Fatalf("unexpected metadata: %+v", ev)
	}
	if ev.Event["tag"] != "checkout" {
		t.Fatalf("expected tag field, got %v", ev.Event)
	}
}

func TestCompose_OmitsTimeByDefault(t *testing.T) {
	ev, _ := composer.Compose(types.Text("ok"), 0, false, snapshot(t), nil, fixedNow)
	if ev.Time != nil || ev.Source != "" {
		t.Fatalf("expected no time or source, got %+v", ev)
	}
}

func TestCompose_AggregateArgs(t *testing.T) {
	p := types.PayloadFromArgs("user", 42)
	ev, _ := composer.Compose(p, types.SeverityInfo, true, snapshot(t), nil, fixedNow)
	if ev.Event["0"] != "user" || ev.Event["1"] != 42 {
		t.Fatalf("unexpected aggregate: %v", ev.Event)
	}
	if !strings.EqualFold(ev.Event["level"].(string), "info") {
		t.Fatalf("unexpected level: %v", ev.Event["level"])
	}
}
