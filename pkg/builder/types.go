package builder

import (
	"context"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

type ComponentMetadata = types.ComponentMetadata

type Event = types.Event

type Payload = types.Payload

type ErrorInfo = types.ErrorInfo

type Environment = types.Environment

type StaticEnvironment = types.StaticEnvironment

type UncaughtError = types.UncaughtError

type ErrorObserver = types.ErrorObserver

type Console = types.Console

type LeveledLogger = types.LeveledLogger

type Forwarder = types.Forwarder

type Dispatcher = types.Dispatcher

type Transport = types.Transport

type HTTPError = types.HTTPError

// Severity is the level of a forwarded event.
type Severity = types.Severity

const (
	SeverityDebug = types.SeverityDebug
	SeverityInfo  = types.SeverityInfo
	SeverityWarn  = types.SeverityWarn
	SeverityError = types.SeverityError
)

// ParseSeverity resolves DEBUG, INFO, WARN or ERROR case-insensitively.
func ParseSeverity(name string) (Severity, bool) {
	return types.ParseSeverity(name)
}

// Text wraps a scalar carried as the event message.
func Text(v interface{}) Payload {
	return types.Text(v)
}

// Fields wraps a field map merged over the configured extra fields.
func Fields(m map[string]interface{}) Payload {
	return types.Fields(m)
}

// ErrorPayload forwards err's message and stack.
func ErrorPayload(err error) Payload {
	return types.ErrorPayload(err)
}

// PayloadFromArgs classifies log call arguments the way the dispatcher does.
func PayloadFromArgs(args ...interface{}) Payload {
	return types.PayloadFromArgs(args...)
}

// ContextWithEnvironment scopes the url and user agent attached to events sent with ctx.
func ContextWithEnvironment(ctx context.Context, env Environment) context.Context {
	return types.ContextWithEnvironment(ctx, env)
}
