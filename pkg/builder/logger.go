package builder

import (
	internalLogger "github.com/joeydtaylor/splunklogger/pkg/internal/internallogger"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/logschema"
)

type LoggerOption = internalLogger.LoggerOption

// ZapLoggerAdapter is the zap backed diagnostic logger returned by NewLogger.
type ZapLoggerAdapter = internalLogger.ZapLoggerAdapter

type SinkConfig = types.SinkConfig

type SinkType = types.SinkType

const (
	FileSink   SinkType = types.FileSink
	StdoutSink SinkType = types.StdoutSink
	StderrSink SinkType = types.StderrSink
)

// NewLogger creates the zap backed diagnostic logger.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	return internalLogger.NewLogger(options...)
}

// LoggerWithLevel configures the logger to use the specified log level
func LoggerWithLevel(levelStr string) LoggerOption {
	return internalLogger.LoggerWithLevel(levelStr)
}

// LoggerWithDevelopment enables or disables development mode
func LoggerWithDevelopment(dev bool) LoggerOption {
	return internalLogger.LoggerWithDevelopment(dev)
}

// LoggerWithoutStdout keeps diagnostics off stdout; add sinks to route them.
func LoggerWithoutStdout() LoggerOption {
	return internalLogger.LoggerWithoutStdout()
}

func LoggerWithoutCaller() LoggerOption {
	return internalLogger.LoggerWithoutCaller()
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return internalLogger.LoggerWithFields(fields)
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return internalLogger.LoggerWithSchema(schema)
}

// Log schema constants for the diagnostic log format.
const (
	LogSchemaID    = logschema.SchemaID
	LogSchemaField = logschema.FieldSchema
)

// LogLevel is exported from the internal types package.
type LogLevel = types.LogLevel

const (
	DebugLevel  = types.DebugLevel
	InfoLevel   = types.InfoLevel
	WarnLevel   = types.WarnLevel
	ErrorLevel  = types.ErrorLevel
	DPanicLevel = types.DPanicLevel
	PanicLevel  = types.PanicLevel
	FatalLevel  = types.FatalLevel
)
