// Package httpclient posts request bodies to the collector. A post is one logical
// send: 5xx responses may be retried in place with exponential backoff before the
// final outcome is returned.
package httpclient

import (
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/internal/utils"
	"golang.org/x/net/publicsuffix"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryMin   = 200 * time.Millisecond
	DefaultRetryMax   = 5 * time.Second
	maxErrorBodyBytes = 4 << 10
)

// HTTPClientAdapter is a cookie-aware JSON poster.
type HTTPClientAdapter struct {
	componentMetadata types.ComponentMetadata
	configLock        sync.Mutex
	httpClient        *http.Client
	headers           map[string]string
	maxRetries        int
	retryMin          time.Duration
	retryMax          time.Duration
	timeout           time.Duration
	pins              map[certPin]struct{}

	sensors     []types.Sensor
	sensorsLock sync.Mutex
	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewHTTPClientAdapter creates an adapter whose client keeps a cookie jar, so cookies
// set by the collector are sent back on later posts.
func NewHTTPClientAdapter(options ...types.Option[types.HTTPClientAdapter]) types.HTTPClientAdapter {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	hp := &HTTPClientAdapter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "HTTP_ADAPTER",
		},
		headers:    make(map[string]string),
		httpClient: &http.Client{Timeout: DefaultTimeout, Jar: jar},
		retryMin:   DefaultRetryMin,
		retryMax:   DefaultRetryMax,
		timeout:    DefaultTimeout,
	}

	for _, opt := range options {
		opt(hp)
	}

	return hp
}
