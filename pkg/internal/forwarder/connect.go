package forwarder

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// ConnectLogger attaches loggers to the forwarder and its transport.
func (f *Forwarder) ConnectLogger(loggers ...types.Logger) {
	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}
	loggers = loggers[:n]

	f.configLock.Lock()
	f.loggers = append(f.loggers, loggers...)
	f.configLock.Unlock()

	f.transport.ConnectLogger(loggers...)
}

// ConnectSensor attaches sensors to the forwarder and its transport.
func (f *Forwarder) ConnectSensor(sensors ...types.Sensor) {
	n := 0
	for _, s := range sensors {
		if s != nil {
			sensors[n] = s
			n++
		}
	}
	if n == 0 {
		return
	}
	sensors = sensors[:n]

	f.configLock.Lock()
	f.sensors = append(f.sensors, sensors...)
	f.configLock.Unlock()

	f.transport.ConnectSensor(sensors...)
}
