package dispatch

import (
	"context"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// Logger is a named sub-logger. Its events carry a logger field.
type Logger struct {
	name       string
	dispatcher *Dispatcher
}

// Name returns the name the logger was created with.
func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) Log(args ...interface{}) {
	l.dispatcher.dispatch(context.Background(), types.SeverityInfo, l.name, args)
}

func (l *Logger) Debug(args ...interface{}) {
	l.dispatcher.dispatch(context.Background(), types.SeverityDebug, l.name, args)
}

func (l *Logger) Info(args ...interface{}) {
	l.dispatcher.dispatch(context.Background(), types.SeverityInfo, l.name, args)
}

func (l *Logger) Warn(args ...interface{}) {
	l.dispatcher.dispatch(context.Background(), types.SeverityWarn, l.name, args)
}

func (l *Logger) Error(args ...interface{}) {
	l.dispatcher.dispatch(context.Background(), types.SeverityError, l.name, args)
}

func (l *Logger) LogContext(ctx context.Context, level types.Severity, args ...interface{}) {
	l.dispatcher.dispatch(ctx, level, l.name, args)
}
