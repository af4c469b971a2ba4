package httpclient

import (
	"net/http"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

func (hp *HTTPClientAdapter) client() *http.Client {
	hp.configLock.Lock()
	defer hp.configLock.Unlock()
	return hp.httpClient
}

func (hp *HTTPClientAdapter) snapshotHeaders() map[string]string {
	hp.configLock.Lock()
	defer hp.configLock.Unlock()
	out := make(map[string]string, len(hp.headers))
	for k, v := range hp.headers {
		out[k] = v
	}
	return out
}

func (hp *HTTPClientAdapter) snapshotSensors() []types.Sensor {
	hp.sensorsLock.Lock()
	defer hp.sensorsLock.Unlock()
	return append([]types.Sensor(nil), hp.sensors...)
}

func (hp *HTTPClientAdapter) snapshotLoggers() []types.Logger {
	hp.loggersLock.Lock()
	defer hp.loggersLock.Unlock()
	return append([]types.Logger(nil), hp.loggers...)
}
