// Package errorcapture collects runtime errors that escaped application code and
// hands them to registered observers in registration order.
package errorcapture

import (
	"sync"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/internal/utils"
)

// Registry implements types.ErrorRegistry.
type Registry struct {
	componentMetadata types.ComponentMetadata

	observerLock sync.RWMutex
	observers    []types.ErrorObserver

	configLock sync.Mutex
	loggers    []types.Logger
	sensors    []types.Sensor
}

func NewRegistry(options ...types.Option[types.ErrorRegistry]) *Registry {
	r := &Registry{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "ERROR_REGISTRY",
		},
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// Register appends observers. Observers already registered are kept and run first.
func (r *Registry) Register(observers ...types.ErrorObserver) {
	r.observerLock.Lock()
	for _, o := range observers {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
	count := len(r.observers)
	r.observerLock.Unlock()

	r.NotifyLoggers(types.DebugLevel, "Register: observers updated", "component", r.GetComponentMetadata(), "observers", count)
}

// Report passes err to every observer in registration order.
func (r *Registry) Report(err types.UncaughtError) {
	r.observerLock.RLock()
	observers := append([]types.ErrorObserver(nil), r.observers...)
	r.observerLock.RUnlock()

	metadata := r.GetComponentMetadata()
	for _, s := range r.snapshotSensors() {
		s.InvokeOnUncaughtError(metadata, err.Message)
	}
	r.NotifyLoggers(types.DebugLevel, "Report: uncaught error", "component", metadata,
		"message", err.Message, "url", err.URL, "line", err.Line, "observers", len(observers))

	for _, o := range observers {
		o(err)
	}
}

// Observers returns the number of registered observers.
func (r *Registry) Observers() int {
	r.observerLock.RLock()
	defer r.observerLock.RUnlock()
	return len(r.observers)
}
