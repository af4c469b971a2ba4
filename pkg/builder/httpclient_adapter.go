package builder

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/adapter/httpclient"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// NewHTTPClientAdapter creates the POST client used by transports.
func NewHTTPClientAdapter(options ...types.Option[types.HTTPClientAdapter]) types.HTTPClientAdapter {
	return httpclient.NewHTTPClientAdapter(options...)
}

// HTTPClientAdapterWithHeader adds a header sent with every request.
func HTTPClientAdapterWithHeader(key, value string) types.Option[types.HTTPClientAdapter] {
	return httpclient.WithHeader(key, value)
}

func HTTPClientAdapterWithTimeout(timeout time.Duration) types.Option[types.HTTPClientAdapter] {
	return httpclient.WithTimeout(timeout)
}

// HTTPClientAdapterWithMaxRetries retries 5xx and 429 responses up to retries times.
func HTTPClientAdapterWithMaxRetries(retries int) types.Option[types.HTTPClientAdapter] {
	return httpclient.WithMaxRetries(retries)
}

func HTTPClientAdapterWithRetryBackoff(min, max time.Duration) types.Option[types.HTTPClientAdapter] {
	return httpclient.WithRetryBackoff(min, max)
}

// HTTPClientAdapterWithTlsPinnedCertificate trusts only the certificate at certPath.
func HTTPClientAdapterWithTlsPinnedCertificate(certPath string) types.Option[types.HTTPClientAdapter] {
	return httpclient.WithTlsPinnedCertificate(certPath)
}

func HTTPClientAdapterWithLogger(l ...types.Logger) types.Option[types.HTTPClientAdapter] {
	return httpclient.WithLogger(l...)
}

func HTTPClientAdapterWithSensor(s ...types.Sensor) types.Option[types.HTTPClientAdapter] {
	return httpclient.WithSensor(s...)
}

func HTTPClientAdapterWithComponentMetadata(name string, id string) types.Option[types.HTTPClientAdapter] {
	return httpclient.WithComponentMetadata(name, id)
}
