package dispatch

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// SetConsole replaces the console log calls are echoed to. Nil is ignored.
func (d *Dispatcher) SetConsole(console types.Console) {
	if console == nil {
		return
	}
	d.configLock.Lock()
	d.console = console
	d.configLock.Unlock()
}

// SetLegacyLoggerField makes named loggers put their call arguments in the logger
// field instead of their name.
func (d *Dispatcher) SetLegacyLoggerField(legacy bool) {
	d.configLock.Lock()
	d.legacyLoggerField = legacy
	d.configLock.Unlock()
}

func (d *Dispatcher) ConnectLogger(loggers ...types.Logger) {
	d.configLock.Lock()
	defer d.configLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			d.loggers = append(d.loggers, l)
		}
	}
}

func (d *Dispatcher) GetComponentMetadata() types.ComponentMetadata {
	d.configLock.Lock()
	defer d.configLock.Unlock()
	return d.componentMetadata
}

func (d *Dispatcher) SetComponentMetadata(name string, id string) {
	d.configLock.Lock()
	d.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: d.componentMetadata.Type}
	d.configLock.Unlock()
}
