package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

func TestNew_Defaults(t *testing.T) {
	s := settings.Default()

	if s.Level() != "DEBUG" {
		t.Fatalf("expected DEBUG default level, got %q", s.Level())
	}
	if !s.LogToConsole() || !s.LoggingEnabled() {
		t.Fatalf("expected logToConsole and loggingEnabled to default true")
	}
	if s.IncludeURL() || s.IncludeTimestamp() || s.IncludeUserAgent() || s.SendConsoleErrors() {
		t.Fatalf("expected include flags and sendConsoleErrors to default false")
	}
	if _, ok := s.ErrorThreshold(); ok {
		t.Fatalf("expected no error threshold by default")
	}
	if len(s.Fields()) != 0 || len(s.Labels()) != 0 {
		t.Fatalf("expected empty fields and labels")
	}
	if s.AuthScheme() != settings.DefaultAuthScheme {
		t.Fatalf("expected %q auth scheme, got %q", settings.DefaultAuthScheme, s.AuthScheme())
	}
	if s.RequestTimeout() != settings.DefaultRequestTimeout {
		t.Fatalf("expected default timeout, got %v", s.RequestTimeout())
	}
	if s.Snapshot().CanSend() {
		t.Fatalf("default store must not be able to send")
	}
}

func TestNew_InvalidLevelOption(t *testing.T) {
	_, err := settings.New(settings.WithLevel("TRACE"))
	if !errors.Is(err, settings.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestSetLevel_CaseInsensitive(t *testing.T) {
	s := settings.Default()
	if err := s.SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if s.Level() != "WARN" {
		t.Fatalf("expected WARN, got %q", s.Level())
	}
}

func TestSetLevel_InvalidKeepsPrevious(t *testing.T) {
	s := settings.Default()
	_ = s.SetLevel("INFO")

	err := s.SetLevel("VERBOSE")
	var lvlErr *settings.InvalidLevelError
	if !errors.As(err, &lvlErr) || lvlErr.Name != "VERBOSE" {
		t.Fatalf("expected InvalidLevelError for VERBOSE, got %v", err)
	}
	if s.Level() != "INFO" {
		t.Fatalf("level changed after invalid set: %q", s.Level())
	}
	if err := s.SetMinLevel(types.Severity(9)); err == nil {
		t.Fatalf("expected out-of-range severity to fail")
	}
}

func TestIsLevelEnabled(t *testing.T) {
	s := settings.Default()
	_ = s.SetLevel("WARN")

	cases := map[string]bool{
		"DEBUG": false,
		"INFO":  false,
		"WARN":  true,
		"error": true,
		"FATAL": false,
		"":      false,
	}
	for name, want := range cases {
		if got := s.IsLevelEnabled(name); got != want {
			t.Errorf("IsLevelEnabled(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFields_ReturnsCopy(t *testing.T) {
	src := map[string]interface{}{"app": "x"}
	s := settings.Default().SetFields(src)

	src["app"] = "mutated"
	got := s.Fields()
	if got["app"] != "x" {
		t.Fatalf("store aliased caller map: %v", got)
	}
	got["app"] = "again"
	if s.Fields()["app"] != "x" {
		t.Fatalf("store returned its internal map")
	}
}

func TestSetFields_ReplacesWholesale(t *testing.T) {
	s := settings.Default().
		SetFields(map[string]interface{}{"a": 1}).
		SetFields(map[string]interface{}{"b": 2})

	fields := s.Fields()
	if _, ok := fields["a"]; ok {
		t.Fatalf("expected old field to be dropped, got %v", fields)
	}
	if fields["b"] != 2 {
		t.Fatalf("expected b=2, got %v", fields)
	}
}

func TestErrorThreshold_SetAndClear(t *testing.T) {
	s := settings.Default().SetErrorThreshold(3)
	if n, ok := s.ErrorThreshold(); !ok || n != 3 {
		t.Fatalf("expected threshold 3, got %d %v", n, ok)
	}

	snap := s.Snapshot()
	s.SetErrorThreshold(7)
	if *snap.ErrorThreshold != 3 {
		t.Fatalf("snapshot threshold changed with store")
	}

	s.ClearErrorThreshold()
	if _, ok := s.ErrorThreshold(); ok {
		t.Fatalf("expected threshold cleared")
	}
}

func TestSnapshot_CanSend(t *testing.T) {
	s, err := settings.New(
		settings.WithEndpoint("https://collector.example/services/collector"),
		settings.WithToken("abc"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.Snapshot().CanSend() {
		t.Fatalf("expected CanSend with token and endpoint")
	}
	s.SetLoggingEnabled(false)
	if s.Snapshot().CanSend() {
		t.Fatalf("expected CanSend false when logging disabled")
	}
	s.SetLoggingEnabled(true).SetToken("")
	if s.Snapshot().CanSend() {
		t.Fatalf("expected CanSend false without token")
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splunk.yaml")
	body := `
endpoint: https://collector.example/services/collector
token: from-file
level: info
source: web
include_timestamp: true
log_to_console: false
error_threshold: 2
fields:
  app: storefront
labels:
  message: msg
compression: gzip
request_timeout: 5s
max_retries: 3
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(settings.EnvToken, "")

	s, err := settings.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Endpoint() != "https://collector.example/services/collector" || s.Token() != "from-file" {
		t.Fatalf("unexpected endpoint/token: %q %q", s.Endpoint(), s.Token())
	}
	if s.Level() != "INFO" || s.Source() != "web" {
		t.Fatalf("unexpected level/source: %q %q", s.Level(), s.Source())
	}
	if !s.IncludeTimestamp() || s.LogToConsole() {
		t.Fatalf("unexpected flags")
	}
	if !s.LoggingEnabled() {
		t.Fatalf("unset logging_enabled must keep default true")
	}
	if n, ok := s.ErrorThreshold(); !ok || n != 2 {
		t.Fatalf("unexpected threshold %d %v", n, ok)
	}
	if s.Fields()["app"] != "storefront" || s.Labels()["message"] != "msg" {
		t.Fatalf("unexpected fields/labels: %v %v", s.Fields(), s.Labels())
	}
	if s.Compression() != "gzip" || s.RequestTimeout() != 5*time.Second || s.MaxRetries() != 3 {
		t.Fatalf("unexpected transport settings")
	}
}

func TestLoadFile_JSONCWithTokenOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splunk.jsonc")
	body := `{
  // collector
  "endpoint": "https://collector.example",
  "token": "from-file",
  "send_console_errors": true, /* forwarded */
}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(settings.EnvToken, "from-env")

	s, err := settings.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Token() != "from-env" {
		t.Fatalf("expected env token override, got %q", s.Token())
	}
	if !s.SendConsoleErrors() {
		t.Fatalf("expected send_console_errors true")
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := settings.LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("level: loud\n"), 0o600)
	if _, err := settings.LoadFile(bad); !errors.Is(err, settings.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}

	toml := filepath.Join(dir, "conf.toml")
	_ = os.WriteFile(toml, []byte("x = 1\n"), 0o600)
	if _, err := settings.LoadFile(toml); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestLoad_RequiresEnv(t *testing.T) {
	t.Setenv(settings.EnvConfig, "")
	if _, err := settings.Load(); err == nil {
		t.Fatalf("expected error when %s is unset", settings.EnvConfig)
	}
}
