package httpclient

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// WithHeader adds a static header.
func WithHeader(key, value string) types.Option[types.HTTPClientAdapter] {
	return func(hp types.HTTPClientAdapter) {
		hp.AddHeader(key, value)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) types.Option[types.HTTPClientAdapter] {
	return func(hp types.HTTPClientAdapter) {
		hp.SetTimeout(timeout)
	}
}

// WithMaxRetries sets how many times a 5xx or 429 response is retried.
func WithMaxRetries(retries int) types.Option[types.HTTPClientAdapter] {
	return func(hp types.HTTPClientAdapter) {
		hp.SetMaxRetries(retries)
	}
}

func WithRetryBackoff(min, max time.Duration) types.Option[types.HTTPClientAdapter] {
	return func(hp types.HTTPClientAdapter) {
		hp.SetRetryBackoff(min, max)
	}
}

// WithTlsPinnedCertificate pins the collector certificate.
func WithTlsPinnedCertificate(certPath string) types.Option[types.HTTPClientAdapter] {
	return func(hp types.HTTPClientAdapter) {
		hp.SetTlsPinnedCertificate(certPath)
	}
}

func WithLogger(l ...types.Logger) types.Option[types.HTTPClientAdapter] {
	return func(hp types.HTTPClientAdapter) {
		hp.ConnectLogger(l...)
	}
}

func WithSensor(s ...types.Sensor) types.Option[types.HTTPClientAdapter] {
	return func(hp types.HTTPClientAdapter) {
		hp.ConnectSensor(s...)
	}
}

func WithComponentMetadata(name string, id string) types.Option[types.HTTPClientAdapter] {
	return func(hp types.HTTPClientAdapter) {
		hp.SetComponentMetadata(name, id)
	}
}
