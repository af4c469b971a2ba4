package errorcapture

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// ConnectLogger attaches loggers to the registry.
func (r *Registry) ConnectLogger(loggers ...types.Logger) {
	r.configLock.Lock()
	defer r.configLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			r.loggers = append(r.loggers, l)
		}
	}
}

// ConnectSensor attaches sensors notified of every reported error.
func (r *Registry) ConnectSensor(sensors ...types.Sensor) {
	r.configLock.Lock()
	defer r.configLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			r.sensors = append(r.sensors, s)
		}
	}
}

func (r *Registry) snapshotSensors() []types.Sensor {
	r.configLock.Lock()
	defer r.configLock.Unlock()
	return append([]types.Sensor(nil), r.sensors...)
}
