package forwarder

import (
	"context"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

func (f *Forwarder) GetComponentMetadata() types.ComponentMetadata {
	f.configLock.Lock()
	defer f.configLock.Unlock()
	return f.componentMetadata
}

func (f *Forwarder) SetComponentMetadata(name string, id string) {
	f.configLock.Lock()
	f.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: f.componentMetadata.Type}
	f.configLock.Unlock()
}

// SetEnvironment sets the environment used when a send context carries none.
func (f *Forwarder) SetEnvironment(env types.Environment) {
	f.configLock.Lock()
	f.env = env
	f.configLock.Unlock()
}

// Settings returns the store the forwarder reads on every send.
func (f *Forwarder) Settings() *settings.Store {
	return f.store
}

// Transport returns the transport events are handed to.
func (f *Forwarder) Transport() types.Transport {
	return f.transport
}

func (f *Forwarder) IsLevelEnabled(name string) bool {
	return f.store.IsLevelEnabled(name)
}

// LastLog returns when the last send passed the configuration check. The second
// result is false until one has.
func (f *Forwarder) LastLog() (time.Time, bool) {
	f.lastLogLock.Lock()
	defer f.lastLogLock.Unlock()
	return f.lastLog, !f.lastLog.IsZero()
}

// Wait blocks until every in-flight send has completed.
func (f *Forwarder) Wait() {
	f.transport.Wait()
}

// Close stops the transport, waiting for in-flight sends until ctx ends.
func (f *Forwarder) Close(ctx context.Context) error {
	return f.transport.Close(ctx)
}
