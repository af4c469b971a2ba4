package types

import "context"

// LeveledLogger is the application-facing logging surface. Arguments are passed to the
// console unchanged and classified with PayloadFromArgs for forwarding.
type LeveledLogger interface {
	Log(args ...interface{}) // Log is an alias of Info.
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	LogContext(ctx context.Context, level Severity, args ...interface{})
}

// Dispatcher intercepts log calls, filters them by severity and forwards them.
type Dispatcher interface {
	LeveledLogger

	// GetLogger returns a sub-logger that tags its events with name.
	GetLogger(name string) LeveledLogger

	SetConsole(console Console)
	SetLegacyLoggerField(legacy bool)

	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
