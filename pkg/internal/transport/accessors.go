package transport

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// GetComponentMetadata returns the transport metadata.
func (t *Transport) GetComponentMetadata() types.ComponentMetadata {
	t.configLock.Lock()
	defer t.configLock.Unlock()
	return t.componentMetadata
}

// SetComponentMetadata sets the transport name and id.
func (t *Transport) SetComponentMetadata(name string, id string) {
	t.configLock.Lock()
	t.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: t.componentMetadata.Type}
	t.configLock.Unlock()
}

// CircuitBreaker returns the active breaker, nil when no threshold is configured
// or no send has been attempted since one was.
func (t *Transport) CircuitBreaker() types.CircuitBreaker {
	t.breakerLock.Lock()
	defer t.breakerLock.Unlock()
	return t.breaker
}

// Closed reports whether Close has been called.
func (t *Transport) Closed() bool {
	return t.closed.Load()
}
