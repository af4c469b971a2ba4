// splunk-send forwards messages to an HTTP Event Collector.
//
// Each positional argument is sent as one event at the chosen level. With no
// arguments, each non-empty line of standard input is sent instead. The exit status
// is non-zero when any event could not be delivered.
//
//	splunk-send --endpoint https://hec:8088/services/collector/event --token T "disk full"
//	tail -f app.log | splunk-send --config splunk.yaml --level WARN --field app=billing
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/joeydtaylor/splunklogger/pkg/builder"
)

const closeGrace = 2 * time.Second

type options struct {
	config      string
	endpoint    string
	token       string
	level       string
	source      string
	fields      []string
	labels      []string
	timeout     time.Duration
	retries     int
	compression string
	quiet       bool
	verbose     bool
	logFile     string

	changed func(name string) bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := &options{}

	flagSet := pflag.NewFlagSet("splunk-send", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.config, "config", builder.EnvOr(builder.SettingsEnvConfig, ""), "YAML or JSON configuration file")
	flagSet.StringVar(&opts.endpoint, "endpoint", builder.EnvOr("SPLUNKLOGGER_ENDPOINT", ""), "collector URL")
	flagSet.StringVar(&opts.token, "token", builder.EnvOr(builder.SettingsEnvToken, ""), "collector token")
	flagSet.StringVar(&opts.level, "level", builder.EnvOr("SPLUNKLOGGER_LEVEL", "INFO"), "level of the sent events: DEBUG, INFO, WARN or ERROR")
	flagSet.StringVar(&opts.source, "source", "", "event source")
	flagSet.StringArrayVar(&opts.fields, "field", nil, "extra event field as key=value (repeatable)")
	flagSet.StringArrayVar(&opts.labels, "label", nil, "field rename as old=new (repeatable)")
	flagSet.DurationVar(&opts.timeout, "timeout", builder.EnvDurationOr("SPLUNKLOGGER_TIMEOUT", builder.DefaultRequestTimeout), "per request timeout")
	flagSet.IntVar(&opts.retries, "retries", builder.EnvIntOr("SPLUNKLOGGER_RETRIES", 0), "retries on 5xx and 429 responses")
	flagSet.StringVar(&opts.compression, "compression", "", "request body compression: gzip, zstd, snappy, lz4 or brotli")
	flagSet.BoolVarP(&opts.quiet, "quiet", "q", false, "do not echo messages to stderr")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", builder.EnvBoolOr("SPLUNKLOGGER_VERBOSE", false), "log pipeline diagnostics to stderr")
	flagSet.StringVar(&opts.logFile, "log-file", builder.EnvOr("SPLUNKLOGGER_LOG_FILE", ""), "append pipeline diagnostics as JSON lines to this file")

	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}
	opts.changed = flagSet.Changed
	return opts, flagSet.Args(), nil
}

func run(args []string, stdin io.Reader, stderr io.Writer) error {
	opts, messages, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level, ok := builder.ParseSeverity(opts.level)
	if !ok {
		return fmt.Errorf("invalid --level %q", opts.level)
	}

	store, err := loadSettings(opts)
	if err != nil {
		return err
	}
	if store.Endpoint() == "" || store.Token() == "" {
		return errors.New("an endpoint and a token are required")
	}
	if !store.LoggingEnabled() {
		return errors.New("logging is disabled by the configuration")
	}
	if !store.IsSeverityEnabled(level) {
		return fmt.Errorf("level %s is below the configured minimum %s; nothing would be sent", level, store.Level())
	}

	stats := builder.NewSensor(builder.SensorWithComponentMetadata("splunk-send", "cli"))
	pipelineOptions := []builder.PipelineOption{
		builder.PipelineWithSensor(stats),
		builder.PipelineWithConsole(stderrConsole(stderr)),
	}
	diagnostics, err := diagnosticsLogger(opts)
	if err != nil {
		return err
	}
	if diagnostics != nil {
		defer diagnostics.Flush()
		pipelineOptions = append(pipelineOptions, builder.PipelineWithLogger(diagnostics))
	}

	ctx := context.Background()
	pipeline := builder.NewPipeline(ctx, store, pipelineOptions...)

	if len(messages) > 0 {
		for _, m := range messages {
			pipeline.Dispatcher.LogContext(ctx, level, m)
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			pipeline.Dispatcher.LogContext(ctx, level, line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	wait := store.RequestTimeout()*time.Duration(store.MaxRetries()+1) + closeGrace
	closeCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	if err := pipeline.Close(closeCtx); err != nil {
		return fmt.Errorf("waiting for in-flight events: %w", err)
	}

	s := stats.Stats()
	if s.Failed > 0 || s.Suppressed > 0 {
		return fmt.Errorf("%d of %d events not delivered", s.Failed+s.Suppressed, s.Sent+s.Suppressed)
	}
	return nil
}

// diagnosticsLogger routes pipeline diagnostics to stderr with --verbose and to a
// file with --log-file. It returns nil when neither is requested.
func diagnosticsLogger(opts *options) (*builder.ZapLoggerAdapter, error) {
	if !opts.verbose && opts.logFile == "" {
		return nil, nil
	}
	logger := builder.NewLogger(builder.LoggerWithLevel("debug"), builder.LoggerWithoutStdout())
	if opts.verbose {
		if err := logger.AddSink("stderr", builder.SinkConfig{Type: string(builder.StderrSink)}); err != nil {
			return nil, err
		}
	}
	if opts.logFile != "" {
		sink := builder.SinkConfig{Type: string(builder.FileSink), Config: map[string]interface{}{"path": opts.logFile}}
		if err := logger.AddSink("file", sink); err != nil {
			return nil, fmt.Errorf("--log-file: %w", err)
		}
	}
	return logger, nil
}

// loadSettings starts from the configuration file, if any, and applies the flags
// that were given explicitly.
func loadSettings(opts *options) (*builder.Settings, error) {
	store := builder.DefaultSettings()
	if opts.config != "" {
		loaded, err := builder.LoadSettingsFile(opts.config)
		if err != nil {
			return nil, err
		}
		store = loaded
	}

	if opts.endpoint != "" {
		store.SetEndpoint(opts.endpoint)
	}
	if opts.token != "" {
		store.SetToken(opts.token)
	}
	if opts.source != "" {
		store.SetSource(opts.source)
	}
	if opts.compression != "" {
		store.SetCompression(opts.compression)
	}
	if opts.changed("timeout") || opts.config == "" {
		store.SetRequestTimeout(opts.timeout)
	}
	if opts.changed("retries") || opts.config == "" {
		store.SetMaxRetries(opts.retries)
	}
	if opts.quiet {
		store.SetLogToConsole(false)
	}

	if len(opts.fields) > 0 {
		fields := store.Fields()
		for _, kv := range opts.fields {
			k, v, err := splitPair("--field", kv)
			if err != nil {
				return nil, err
			}
			fields[k] = v
		}
		store.SetFields(fields)
	}
	if len(opts.labels) > 0 {
		labels := store.Labels()
		for _, kv := range opts.labels {
			k, v, err := splitPair("--label", kv)
			if err != nil {
				return nil, err
			}
			labels[k] = v
		}
		store.SetLabels(labels)
	}
	return store, nil
}

func splitPair(flag, kv string) (string, string, error) {
	k, v, ok := strings.Cut(kv, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("%s %q: want key=value", flag, kv)
	}
	return k, v, nil
}

func stderrConsole(w io.Writer) builder.Console {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)).Sugar()
}
