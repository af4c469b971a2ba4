package httpclient

import (
	"net/http"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// SetTimeout updates the client's own per-request timeout.
func (hp *HTTPClientAdapter) SetTimeout(timeout time.Duration) {
	hp.configLock.Lock()
	hp.timeout = timeout
	if hp.httpClient != nil {
		c := *hp.httpClient
		c.Timeout = timeout
		hp.httpClient = &c
	}
	hp.configLock.Unlock()
}

// SetMaxRetries sets how many extra attempts a retryable response gets.
func (hp *HTTPClientAdapter) SetMaxRetries(retries int) {
	if retries < 0 {
		retries = 0
	}
	hp.configLock.Lock()
	hp.maxRetries = retries
	hp.configLock.Unlock()
}

// SetRetryBackoff bounds the wait between retries.
func (hp *HTTPClientAdapter) SetRetryBackoff(min, max time.Duration) {
	hp.configLock.Lock()
	hp.retryMin = min
	hp.retryMax = max
	hp.configLock.Unlock()
}

// AddHeader adds a static header to outgoing requests.
func (hp *HTTPClientAdapter) AddHeader(key, value string) {
	if err := hp.checkHeader(key, value); err != nil {
		return
	}

	hp.configLock.Lock()
	hp.headers[http.CanonicalHeaderKey(key)] = value
	hp.configLock.Unlock()
}

// RemoveHeader removes a static header.
func (hp *HTTPClientAdapter) RemoveHeader(key string) {
	hp.configLock.Lock()
	delete(hp.headers, http.CanonicalHeaderKey(key))
	hp.configLock.Unlock()
}

// SetComponentMetadata sets the component metadata.
func (hp *HTTPClientAdapter) SetComponentMetadata(name string, id string) {
	hp.configLock.Lock()
	hp.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: hp.componentMetadata.Type}
	hp.configLock.Unlock()
}

// GetComponentMetadata returns the metadata.
func (hp *HTTPClientAdapter) GetComponentMetadata() types.ComponentMetadata {
	hp.configLock.Lock()
	defer hp.configLock.Unlock()
	return hp.componentMetadata
}
