package builder

import (
	"github.com/joeydtaylor/splunklogger/pkg/internal/errorcapture"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// NewErrorRegistry creates an uncaught error registry. Defer its CapturePanic in
// goroutines whose panics should be forwarded.
func NewErrorRegistry(options ...types.Option[types.ErrorRegistry]) *errorcapture.Registry {
	return errorcapture.NewRegistry(options...)
}

func ErrorRegistryWithObserver(observers ...ErrorObserver) types.Option[types.ErrorRegistry] {
	return errorcapture.WithObserver(observers...)
}

func ErrorRegistryWithLogger(loggers ...types.Logger) types.Option[types.ErrorRegistry] {
	return errorcapture.WithLogger(loggers...)
}

func ErrorRegistryWithSensor(sensors ...types.Sensor) types.Option[types.ErrorRegistry] {
	return errorcapture.WithSensor(sensors...)
}

func ErrorRegistryWithComponentMetadata(name string, id string) types.Option[types.ErrorRegistry] {
	return errorcapture.WithComponentMetadata(name, id)
}
