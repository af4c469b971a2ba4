package transport

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

func WithLogger(loggers ...types.Logger) types.Option[types.Transport] {
	return func(t types.Transport) {
		t.ConnectLogger(loggers...)
	}
}

// WithSensor attaches sensors observing sends, suppressions and breaker changes.
func WithSensor(sensors ...types.Sensor) types.Option[types.Transport] {
	return func(t types.Transport) {
		t.ConnectSensor(sensors...)
	}
}

func WithComponentMetadata(name string, id string) types.Option[types.Transport] {
	return func(t types.Transport) {
		t.SetComponentMetadata(name, id)
	}
}
