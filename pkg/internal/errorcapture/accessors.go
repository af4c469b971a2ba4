package errorcapture

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

func (r *Registry) GetComponentMetadata() types.ComponentMetadata {
	r.configLock.Lock()
	defer r.configLock.Unlock()
	return r.componentMetadata
}

func (r *Registry) SetComponentMetadata(name string, id string) {
	r.configLock.Lock()
	r.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: r.componentMetadata.Type}
	r.configLock.Unlock()
}
