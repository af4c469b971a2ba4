package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type collector struct {
	mu     sync.Mutex
	events []map[string]interface{}
	status int
}

func newCollector(t *testing.T, status int) (*collector, string) {
	t.Helper()
	c := &collector{status: status}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var decoded struct {
			Event map[string]interface{} `json:"event"`
		}
		_ = json.Unmarshal(body, &decoded)
		c.mu.Lock()
		c.events = append(c.events, decoded.Event)
		c.mu.Unlock()
		w.WriteHeader(c.status)
	}))
	t.Cleanup(srv.Close)
	return c, srv.URL
}

func (c *collector) sent() []map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]map[string]interface{}(nil), c.events...)
}

func TestParseFlags(t *testing.T) {
	opts, rest, err := parseFlags([]string{
		"--endpoint", "http://hec", "--token", "t", "--level", "warn",
		"--field", "app=cli", "--field", "env=prod", "--label", "message=msg",
		"--timeout", "5s", "-q", "one", "two",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.endpoint != "http://hec" || opts.level != "warn" || opts.timeout != 5*time.Second || !opts.quiet {
		t.Fatalf("unexpected options %+v", opts)
	}
	if len(opts.fields) != 2 || opts.fields[1] != "env=prod" || len(opts.labels) != 1 {
		t.Fatalf("unexpected repeated flags %v %v", opts.fields, opts.labels)
	}
	if strings.Join(rest, ",") != "one,two" {
		t.Fatalf("unexpected positional args %v", rest)
	}
	if !opts.changed("timeout") || opts.changed("retries") {
		t.Fatalf("unexpected changed flags")
	}
}

func TestRun_SendsArguments(t *testing.T) {
	c, url := newCollector(t, http.StatusOK)

	err := run([]string{
		"--endpoint", url, "--token", "t", "--level", "WARN", "--source", "cli",
		"--field", "app=billing", "--label", "message=msg", "-q", "first", "second",
	}, strings.NewReader(""), io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	events := c.sent()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	seen := map[interface{}]bool{}
	for _, ev := range events {
		if ev["level"] != "WARN" || ev["app"] != "billing" {
			t.Fatalf("unexpected event %+v", ev)
		}
		seen[ev["msg"]] = true
	}
	if !seen["first"] || !seen["second"] {
		t.Fatalf("unexpected messages %+v", events)
	}
}

func TestRun_ReadsStdin(t *testing.T) {
	c, url := newCollector(t, http.StatusOK)

	var stderr bytes.Buffer
	err := run([]string{"--endpoint", url, "--token", "t"}, strings.NewReader("alpha\n\n beta \n"), &stderr)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(c.sent()) != 2 {
		t.Fatalf("expected 2 events, got %d", len(c.sent()))
	}
	if !strings.Contains(stderr.String(), "alpha") {
		t.Fatalf("expected console echo on stderr, got %q", stderr.String())
	}
}

func TestRun_ConfigFile(t *testing.T) {
	c, url := newCollector(t, http.StatusOK)

	path := filepath.Join(t.TempDir(), "splunk.yaml")
	config := "endpoint: " + url + "\ntoken: from-file\nfields:\n  team: core\nlog_to_console: false\n"
	if err := os.WriteFile(path, []byte(config), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := run([]string{"--config", path, "--field", "app=cli", "hello"}, strings.NewReader(""), io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}

	events := c.sent()
	if len(events) != 1 || events[0]["team"] != "core" || events[0]["app"] != "cli" || events[0]["message"] != "hello" {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestRun_ReportsFailures(t *testing.T) {
	_, url := newCollector(t, http.StatusForbidden)

	err := run([]string{"--endpoint", url, "--token", "t", "-q", "x"}, strings.NewReader(""), io.Discard)
	if err == nil || !strings.Contains(err.Error(), "1 of 1 events not delivered") {
		t.Fatalf("expected delivery failure, got %v", err)
	}
}

func TestRun_Validation(t *testing.T) {
	cases := map[string][]string{
		"missing endpoint": {"--token", "t", "x"},
		"bad level":        {"--endpoint", "http://hec", "--token", "t", "--level", "TRACE", "x"},
		"bad field":        {"--endpoint", "http://hec", "--token", "t", "--field", "novalue", "x"},
		"bad label":        {"--endpoint", "http://hec", "--token", "t", "--label", "=new", "x"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if err := run(args, strings.NewReader(""), io.Discard); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestRun_RejectsLevelBelowConfiguredMinimum(t *testing.T) {
	c, url := newCollector(t, http.StatusOK)

	path := filepath.Join(t.TempDir(), "splunk.yaml")
	config := "endpoint: " + url + "\ntoken: t\nlevel: ERROR\n"
	if err := os.WriteFile(path, []byte(config), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := run([]string{"--config", path, "--level", "INFO", "-q", "hello"}, strings.NewReader(""), io.Discard)
	if err == nil || !strings.Contains(err.Error(), "below the configured minimum ERROR") {
		t.Fatalf("expected a level error, got %v", err)
	}
	if len(c.sent()) != 0 {
		t.Fatalf("nothing should be sent, got %+v", c.sent())
	}

	if err := run([]string{"--config", path, "--level", "ERROR", "-q", "hello"}, strings.NewReader(""), io.Discard); err != nil {
		t.Fatalf("run at the minimum level: %v", err)
	}
	if len(c.sent()) != 1 {
		t.Fatalf("expected one event, got %+v", c.sent())
	}
}

func TestRun_RejectsDisabledLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splunk.yaml")
	config := "endpoint: http://hec\ntoken: t\nlogging_enabled: false\n"
	if err := os.WriteFile(path, []byte(config), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := run([]string{"--config", path, "x"}, strings.NewReader(""), io.Discard); err == nil {
		t.Fatalf("expected an error when logging is disabled")
	}
}

func TestRun_WritesDiagnosticsToLogFile(t *testing.T) {
	_, url := newCollector(t, http.StatusOK)
	logFile := filepath.Join(t.TempDir(), "diag", "splunk-send.log")

	if err := run([]string{"--endpoint", url, "--token", "t", "-q", "--log-file", logFile, "hello"}, strings.NewReader(""), io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}

	raw, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("expected diagnostics file: %v", err)
	}
	succeeded := false
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("diagnostics line %q is not JSON: %v", line, err)
		}
		if entry["msg"] == "Transport: send succeeded" {
			succeeded = true
		}
	}
	if !succeeded {
		t.Fatalf("expected a send succeeded entry in %s", raw)
	}
}
