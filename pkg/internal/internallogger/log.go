package internallogger

import (
	"strings"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log emits a log entry at the requested level. Pipeline values such as
// component metadata, severities, HTTP failures and composed events are
// rendered as compact structured fields.
func (z *ZapLoggerAdapter) Log(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	logger := z.current()
	if logger == nil {
		return
	}

	zapLevel := ConvertLevel(level)
	ce := logger.Check(zapLevel, msg)
	if ce == nil {
		return
	}
	ce.Write(fieldsFromPairs(keysAndValues)...)
}

// fieldsFromPairs turns alternating key/value arguments into zap fields.
// Non-string keys and a trailing key without a value are dropped.
func fieldsFromPairs(keysAndValues []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok || key == "" {
			continue
		}
		fields = append(fields, fieldFor(key, keysAndValues[i+1]))
	}
	return fields
}

func fieldFor(key string, value interface{}) zap.Field {
	switch v := value.(type) {
	case types.ComponentMetadata:
		return zap.Object(key, componentField(v))
	case *types.ComponentMetadata:
		if v == nil {
			return zap.Skip()
		}
		return zap.Object(key, componentField(*v))
	case types.Severity:
		return zap.String(key, v.String())
	case *types.HTTPError:
		if v == nil {
			return zap.Skip()
		}
		return zap.Object(key, httpErrorField{v})
	case types.Event:
		return zap.Object(key, eventField(v))
	case *types.Event:
		if v == nil {
			return zap.Skip()
		}
		return zap.Object(key, eventField(*v))
	case time.Duration:
		return zap.Duration(key, v)
	case error:
		return zap.NamedError(key, v)
	}
	return zap.Any(key, value)
}

type componentField types.ComponentMetadata

func (c componentField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", c.ID)
	enc.AddString("type", c.Type)
	if c.Name != "" {
		enc.AddString("name", c.Name)
	}
	return nil
}

type httpErrorField struct{ err *types.HTTPError }

func (h httpErrorField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if h.err.StatusCode != 0 {
		enc.AddInt("status", h.err.StatusCode)
	}
	if h.err.Message != "" {
		enc.AddString("message", h.err.Message)
	}
	if h.err.Err != nil {
		enc.AddString("cause", h.err.Err.Error())
	}
	return nil
}

// eventField summarizes an event without copying its body into the log.
type eventField types.Event

func (e eventField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e.Source != "" {
		enc.AddString(logschema.EventSource, e.Source)
	}
	if e.SourceType != "" {
		enc.AddString(logschema.EventSourceType, e.SourceType)
	}
	if e.Index != "" {
		enc.AddString(logschema.EventIndex, e.Index)
	}
	if lvl, ok := e.Event[logschema.EventLevel].(string); ok {
		enc.AddString(logschema.EventLevel, lvl)
	}
	enc.AddInt("fields", len(e.Event))
	return nil
}

// Debug logs a debug message.
func (z *ZapLoggerAdapter) Debug(msg string, keysAndValues ...interface{}) {
	z.Log(types.DebugLevel, msg, keysAndValues...)
}

// Info logs an informational message.
func (z *ZapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	z.Log(types.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warning message.
func (z *ZapLoggerAdapter) Warn(msg string, keysAndValues ...interface{}) {
	z.Log(types.WarnLevel, msg, keysAndValues...)
}

// Error logs an error message.
func (z *ZapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	z.Log(types.ErrorLevel, msg, keysAndValues...)
}

// DPanic logs a critical message.
func (z *ZapLoggerAdapter) DPanic(msg string, keysAndValues ...interface{}) {
	z.Log(types.DPanicLevel, msg, keysAndValues...)
}

// Panic logs a message and panics.
func (z *ZapLoggerAdapter) Panic(msg string, keysAndValues ...interface{}) {
	z.Log(types.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal message.
func (z *ZapLoggerAdapter) Fatal(msg string, keysAndValues ...interface{}) {
	z.Log(types.FatalLevel, msg, keysAndValues...)
}

// GetLevel returns the configured log level.
func (z *ZapLoggerAdapter) GetLevel() types.LogLevel {
	return convertZapLevel(z.atomicLevel.Level())
}

// SetLevel updates the logger's minimum level.
func (z *ZapLoggerAdapter) SetLevel(level types.LogLevel) {
	zapLevel := ConvertLevel(level)
	z.atomicLevel.SetLevel(zapLevel)
}

// Flush syncs the logger's outputs.
func (z *ZapLoggerAdapter) Flush() error {
	logger := z.current()
	if logger == nil {
		return nil
	}
	if err := logger.Sync(); err != nil && !ignorableSyncError(err) {
		return err
	}
	return nil
}

// Sync errors reported for terminals and pipes.
var ignorableSyncErrors = []string{
	"inappropriate ioctl for device",
	"bad file descriptor",
	"invalid argument",
}

func ignorableSyncError(err error) bool {
	msg := err.Error()
	for _, s := range ignorableSyncErrors {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
