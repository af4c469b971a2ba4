package internallogger

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/logschema"
	"go.uber.org/zap/zapcore"
)

// diagnosticEncoderConfig lays out the pipeline's own log lines. Level names are
// upper case so they read the same as the severities of forwarded events.
func diagnosticEncoderConfig() zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:        logschema.FieldTimestamp,
		LevelKey:       logschema.FieldLevel,
		NameKey:        logschema.FieldLogger,
		CallerKey:      logschema.FieldCaller,
		MessageKey:     logschema.FieldMessage,
		StacktraceKey:  logschema.FieldStack,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     encodeMillisUTC,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	return cfg
}

// consoleEncoderConfig is the development variant: colored levels and a
// shorter local timestamp.
func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := diagnosticEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.ConsoleSeparator = " "
	return cfg
}

// encodeMillisUTC matches the millisecond precision of event timestamps.
func encodeMillisUTC(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
}
