package internallogger

import (
	"os"
	"sync"

	"github.com/joeydtaylor/splunklogger/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerOption func(*zap.Config, *zapcore.Level, *int)

type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerDepth int
	callerOn    bool
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter writing JSON to stdout unless
// LoggerWithoutStdout is given.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	config.InitialFields = map[string]interface{}{
		logschema.FieldSchema: logschema.SchemaID,
	}
	level := zapcore.InfoLevel
	callerDepth := 2

	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	atomicLevel := zap.NewAtomicLevelAt(level)
	encConfig := diagnosticEncoderConfig()

	var encoder zapcore.Encoder
	if config.Development {
		encoder = zapcore.NewConsoleEncoder(consoleEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(encConfig)
	}

	baseCore := zapcore.NewNopCore()
	if config.OutputPaths == nil || len(config.OutputPaths) > 0 {
		baseCore = zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atomicLevel)
	}

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		encConfig:   encConfig,
		baseCore:    baseCore,
		baseFields:  initialFields(config.InitialFields),
		callerDepth: callerDepth,
		callerOn:    !config.DisableCaller,
		sinks:       make(map[string]sinkEntry),
	}

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()

	return z
}

func (z *ZapLoggerAdapter) current() *zap.Logger {
	z.mu.Lock()
	logger := z.logger
	z.mu.Unlock()
	return logger
}
