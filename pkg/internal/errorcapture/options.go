package errorcapture

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

func WithLogger(loggers ...types.Logger) types.Option[types.ErrorRegistry] {
	return func(r types.ErrorRegistry) {
		r.ConnectLogger(loggers...)
	}
}

func WithSensor(sensors ...types.Sensor) types.Option[types.ErrorRegistry] {
	return func(r types.ErrorRegistry) {
		r.ConnectSensor(sensors...)
	}
}

// WithObserver registers observers ahead of any added later.
func WithObserver(observers ...types.ErrorObserver) types.Option[types.ErrorRegistry] {
	return func(r types.ErrorRegistry) {
		r.Register(observers...)
	}
}

func WithComponentMetadata(name string, id string) types.Option[types.ErrorRegistry] {
	return func(r types.ErrorRegistry) {
		r.SetComponentMetadata(name, id)
	}
}
