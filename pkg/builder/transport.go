package builder

import (
	"context"

	"github.com/joeydtaylor/splunklogger/pkg/internal/transport"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

const HeaderRequestChannel = transport.HeaderRequestChannel

// NewTransport creates a transport reading store on every send. A nil client gets a
// default one configured from the store.
func NewTransport(ctx context.Context, store *Settings, client types.HTTPClientAdapter, options ...types.Option[types.Transport]) *transport.Transport {
	return transport.NewTransport(ctx, store, client, options...)
}

func TransportWithLogger(loggers ...types.Logger) types.Option[types.Transport] {
	return transport.WithLogger(loggers...)
}

func TransportWithSensor(sensors ...types.Sensor) types.Option[types.Transport] {
	return transport.WithSensor(sensors...)
}

func TransportWithComponentMetadata(name string, id string) types.Option[types.Transport] {
	return transport.WithComponentMetadata(name, id)
}
