package internallogger

import (
	"strings"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

type levelPair struct {
	level types.LogLevel
	zap   zapcore.Level
}

// levelNames is keyed by lower-case name. "warning" is accepted so the
// pipeline's severity names and the usual syslog spellings both resolve.
var levelNames = map[string]levelPair{
	"debug":   {types.DebugLevel, zapcore.DebugLevel},
	"info":    {types.InfoLevel, zapcore.InfoLevel},
	"warn":    {types.WarnLevel, zapcore.WarnLevel},
	"warning": {types.WarnLevel, zapcore.WarnLevel},
	"error":   {types.ErrorLevel, zapcore.ErrorLevel},
	"dpanic":  {types.DPanicLevel, zapcore.DPanicLevel},
	"panic":   {types.PanicLevel, zapcore.PanicLevel},
	"fatal":   {types.FatalLevel, zapcore.FatalLevel},
}

// parseLogLevel resolves name case-insensitively, falling back to info.
func parseLogLevel(name string) types.LogLevel {
	if pair, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return pair.level
	}
	return types.InfoLevel
}

// ConvertLevel converts a types.LogLevel to a zap level.
func ConvertLevel(level types.LogLevel) zapcore.Level {
	for _, pair := range levelNames {
		if pair.level == level {
			return pair.zap
		}
	}
	return zapcore.InfoLevel
}

func convertZapLevel(level zapcore.Level) types.LogLevel {
	for _, pair := range levelNames {
		if pair.zap == level {
			return pair.level
		}
	}
	return types.InfoLevel
}
