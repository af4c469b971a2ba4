package internallogger

import (
	"testing"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLog_WritesFields(t *testing.T) {
	logger := NewLogger()
	core, obs := observer.New(zapcore.DebugLevel)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()

	logger.Log(types.InfoLevel, "msg", "a", "b", "c", 3, "orphan")

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Context
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != "a" || fields[1].Key != "c" {
		t.Fatalf("unexpected field keys: %v, %v", fields[0].Key, fields[1].Key)
	}
}

func TestLog_IgnoresNonStringKeys(t *testing.T) {
	logger := NewLogger()
	core, obs := observer.New(zapcore.DebugLevel)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()

	logger.Log(types.InfoLevel, "msg", 123, "skip", "k", "v")

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Context
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "k" {
		t.Fatalf("expected field key 'k', got %q", fields[0].Key)
	}
}

func TestLog_RespectsCoreLevel(t *testing.T) {
	logger := NewLogger()
	core, obs := observer.New(zapcore.WarnLevel)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()

	logger.Log(types.InfoLevel, "info")
	logger.Log(types.WarnLevel, "warn")

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Entry.Level != zapcore.WarnLevel {
		t.Fatalf("expected warn entry, got %v", entries[0].Entry.Level)
	}
}

func TestLog_NilLoggerNoPanic(t *testing.T) {
	logger := NewLogger()
	logger.mu.Lock()
	logger.logger = nil
	logger.mu.Unlock()

	logger.Log(types.InfoLevel, "msg")
}

func TestFlush_NilLogger(t *testing.T) {
	logger := NewLogger()
	logger.mu.Lock()
	logger.logger = nil
	logger.mu.Unlock()

	if err := logger.Flush(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestConvertLevel_Defaults(t *testing.T) {
	if got := ConvertLevel(types.LogLevel(99)); got != zapcore.InfoLevel {
		t.Fatalf("expected default zapcore.InfoLevel, got %v", got)
	}
	if got := convertZapLevel(zapcore.Level(99)); got != types.InfoLevel {
		t.Fatalf("expected default types.InfoLevel, got %v", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]types.LogLevel{
		"debug":   types.DebugLevel,
		"info":    types.InfoLevel,
		"warn":    types.WarnLevel,
		"error":   types.ErrorLevel,
		"dpanic":  types.DPanicLevel,
		"panic":   types.PanicLevel,
		"fatal":   types.FatalLevel,
		"bogus":   types.InfoLevel,
		"WARN":    types.WarnLevel,
		"warning": types.WarnLevel,
		" Error ": types.ErrorLevel,
	}

	for input, expect := range cases {
		if got := parseLogLevel(input); got != expect {
			t.Fatalf("parseLogLevel(%q) = %v, expected %v", input, got, expect)
		}
	}
}

func TestAttachCore_TeesEntries(t *testing.T) {
	logger := NewLogger(LoggerWithLevel("debug"))
	core, obs := observer.New(zapcore.DebugLevel)

	logger.AttachCore("observer", core)
	logger.Info("attached", "k", "v")

	if obs.Len() != 1 || obs.All()[0].Message != "attached" {
		t.Fatalf("expected the attached core to receive the entry, got %d", obs.Len())
	}

	if err := logger.RemoveSink("observer"); err != nil {
		t.Fatalf("RemoveSink: %v", err)
	}
	logger.Info("detached")
	if obs.Len() != 1 {
		t.Fatalf("expected no entries after removal, got %d", obs.Len())
	}
}

func TestConsole_WritesSugaredEntries(t *testing.T) {
	logger := NewLogger(LoggerWithLevel("debug"))
	core, obs := observer.New(zapcore.DebugLevel)
	logger.AttachCore("observer", core)

	console := logger.Console()
	console.Warn("disk ", "low")
	console.Debug("count", 3)

	entries := obs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel || entries[0].Message != "disk low" {
		t.Fatalf("unexpected entry %+v", entries[0].Entry)
	}
	if entries[1].Level != zapcore.DebugLevel || entries[1].Message != "count3" {
		t.Fatalf("unexpected entry %+v", entries[1].Entry)
	}
}

func TestConsole_NilLoggerNoPanic(t *testing.T) {
	logger := &ZapLoggerAdapter{}
	logger.Console().Error("dropped")
}

func TestLog_RendersPipelineValues(t *testing.T) {
	logger := NewLogger()
	core, obs := observer.New(zapcore.DebugLevel)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()

	meta := types.ComponentMetadata{ID: "abc", Type: "TRANSPORT"}
	logger.Log(types.WarnLevel, "post failed",
		"component", meta,
		"severity", types.SeverityWarn,
		"error", &types.HTTPError{StatusCode: 503, Message: "unavailable"},
		"event", types.Event{Source: "web", Event: map[string]interface{}{"level": "WARN", "message": "m"}},
		"elapsed", 150*time.Millisecond,
	)

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()

	comp, ok := ctx["component"].(map[string]interface{})
	if !ok || comp["id"] != "abc" || comp["type"] != "TRANSPORT" {
		t.Fatalf("unexpected component field: %#v", ctx["component"])
	}
	if _, ok := comp["name"]; ok {
		t.Fatalf("empty name should be omitted: %#v", comp)
	}
	if ctx["severity"] != "WARN" {
		t.Fatalf("expected severity name, got %#v", ctx["severity"])
	}
	httpErr, ok := ctx["error"].(map[string]interface{})
	if !ok || httpErr["status"] != 503 || httpErr["message"] != "unavailable" {
		t.Fatalf("unexpected error field: %#v", ctx["error"])
	}
	ev, ok := ctx["event"].(map[string]interface{})
	if !ok || ev["source"] != "web" || ev["level"] != "WARN" || ev["fields"] != 2 {
		t.Fatalf("unexpected event field: %#v", ctx["event"])
	}
	if _, ok := ev["message"]; ok {
		t.Fatalf("event body should not be logged: %#v", ev)
	}
	if ctx["elapsed"] != 150*time.Millisecond {
		t.Fatalf("unexpected duration field: %#v", ctx["elapsed"])
	}
}

func TestInitialFields_SortedAndFiltered(t *testing.T) {
	fields := initialFields(map[string]interface{}{"b": 2, "": "x", "a": 1, "nil": nil})
	if len(fields) != 2 || fields[0].Key != "a" || fields[1].Key != "b" {
		t.Fatalf("unexpected fields: %#v", fields)
	}
	if initialFields(nil) != nil {
		t.Fatalf("expected nil for empty map")
	}
}
