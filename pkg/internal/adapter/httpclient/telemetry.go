package httpclient

import "github.com/joeydtaylor/splunklogger/pkg/internal/types"

// ConnectSensor attaches sensors to observe requests. Nil sensors are ignored.
func (hp *HTTPClientAdapter) ConnectSensor(sensors ...types.Sensor) {
	hp.sensorsLock.Lock()
	for _, s := range sensors {
		if s != nil {
			hp.sensors = append(hp.sensors, s)
		}
	}
	hp.sensorsLock.Unlock()
}

// ConnectLogger attaches diagnostic loggers. Nil loggers are ignored.
func (hp *HTTPClientAdapter) ConnectLogger(loggers ...types.Logger) {
	hp.loggersLock.Lock()
	for _, l := range loggers {
		if l != nil {
			hp.loggers = append(hp.loggers, l)
		}
	}
	hp.loggersLock.Unlock()
}

// NotifyLoggers writes msg to every attached logger whose level admits it.
func (hp *HTTPClientAdapter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range hp.snapshotLoggers() {
		if logger.GetLevel() > level {
			continue
		}
		if write := writerFor(logger, level); write != nil {
			write(msg, keysAndValues...)
		}
	}
}

func writerFor(logger types.Logger, level types.LogLevel) func(string, ...interface{}) {
	switch level {
	case types.DebugLevel:
		return logger.Debug
	case types.InfoLevel:
		return logger.Info
	case types.WarnLevel:
		return logger.Warn
	case types.ErrorLevel:
		return logger.Error
	case types.DPanicLevel:
		return logger.DPanic
	case types.PanicLevel:
		return logger.Panic
	case types.FatalLevel:
		return logger.Fatal
	}
	return nil
}

func (hp *HTTPClientAdapter) eachSensor(fn func(types.Sensor, types.ComponentMetadata)) {
	sensors := hp.snapshotSensors()
	if len(sensors) == 0 {
		return
	}
	metadata := hp.GetComponentMetadata()
	for _, s := range sensors {
		fn(s, metadata)
	}
}

func (hp *HTTPClientAdapter) notifyHTTPClientRequestStart() {
	hp.eachSensor(func(s types.Sensor, m types.ComponentMetadata) { s.InvokeOnHTTPClientRequestStart(m) })
}

func (hp *HTTPClientAdapter) notifyHTTPClientError(err error) {
	hp.eachSensor(func(s types.Sensor, m types.ComponentMetadata) { s.InvokeOnHTTPClientError(m, err) })
}

func (hp *HTTPClientAdapter) notifyHTTPClientResponseReceived(status int) {
	hp.eachSensor(func(s types.Sensor, m types.ComponentMetadata) { s.InvokeOnHTTPClientResponseReceived(m, status) })
}

func (hp *HTTPClientAdapter) notifyHTTPClientRequestComplete() {
	hp.eachSensor(func(s types.Sensor, m types.ComponentMetadata) { s.InvokeOnHTTPClientRequestComplete(m) })
}
