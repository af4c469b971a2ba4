package types

import (
	"context"
	"fmt"
	"time"
)

// HTTPError describes a failed HTTP completion. StatusCode is zero when no response arrived.
type HTTPError struct {
	StatusCode int
	Err        error
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s, %v", e.StatusCode, e.Message, e.Err)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// HTTPClientAdapter is the post capability the transport sends through.
type HTTPClientAdapter interface {
	// Post sends body to url with the adapter's static headers plus headers.
	// A nil error means a 2xx response was received.
	Post(ctx context.Context, url string, body []byte, headers map[string]string) (int, error)
	AddHeader(key, value string)
	RemoveHeader(key string)
	SetTimeout(timeout time.Duration)
	SetMaxRetries(retries int)
	SetRetryBackoff(min, max time.Duration)
	SetTlsPinnedCertificate(certPath string)
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
