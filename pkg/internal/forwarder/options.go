package forwarder

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

func WithLogger(loggers ...types.Logger) types.Option[types.Forwarder] {
	return func(f types.Forwarder) {
		f.ConnectLogger(loggers...)
	}
}

func WithSensor(sensors ...types.Sensor) types.Option[types.Forwarder] {
	return func(f types.Forwarder) {
		f.ConnectSensor(sensors...)
	}
}

// WithEnvironment supplies url and user agent values for events whose send context
// carries no environment.
func WithEnvironment(env types.Environment) types.Option[types.Forwarder] {
	return func(f types.Forwarder) {
		f.SetEnvironment(env)
	}
}

func WithComponentMetadata(name string, id string) types.Option[types.Forwarder] {
	return func(f types.Forwarder) {
		f.SetComponentMetadata(name, id)
	}
}
