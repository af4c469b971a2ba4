package internallogger

import (
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"go.uber.org/zap"
)

type console struct {
	z *ZapLoggerAdapter
}

// Console exposes the adapter as a host console: arguments are concatenated the way
// zap's sugared logger does and written at the matching level.
func (z *ZapLoggerAdapter) Console() types.Console {
	return console{z: z}
}

func (c console) sugar() *zap.SugaredLogger {
	logger := c.z.current()
	if logger == nil {
		return zap.NewNop().Sugar()
	}
	return logger.WithOptions(zap.AddCallerSkip(-1)).Sugar()
}

func (c console) Debug(args ...interface{}) { c.sugar().Debug(args...) }
func (c console) Info(args ...interface{})  { c.sugar().Info(args...) }
func (c console) Warn(args ...interface{})  { c.sugar().Warn(args...) }
func (c console) Error(args ...interface{}) { c.sugar().Error(args...) }
