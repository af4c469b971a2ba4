package builder

import (
	"context"

	"github.com/joeydtaylor/splunklogger/pkg/internal/forwarder"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// NewForwarder creates the forwarding service. A nil transport gets the default one.
func NewForwarder(ctx context.Context, store *Settings, t types.Transport, options ...types.Option[types.Forwarder]) *forwarder.Forwarder {
	return forwarder.NewForwarder(ctx, store, t, options...)
}

func ForwarderWithLogger(loggers ...types.Logger) types.Option[types.Forwarder] {
	return forwarder.WithLogger(loggers...)
}

func ForwarderWithSensor(sensors ...types.Sensor) types.Option[types.Forwarder] {
	return forwarder.WithSensor(sensors...)
}

// ForwarderWithEnvironment sets the url and user agent used when a send context has none.
func ForwarderWithEnvironment(env Environment) types.Option[types.Forwarder] {
	return forwarder.WithEnvironment(env)
}

func ForwarderWithComponentMetadata(name string, id string) types.Option[types.Forwarder] {
	return forwarder.WithComponentMetadata(name, id)
}
