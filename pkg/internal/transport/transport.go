// Package transport delivers composed events to the collector, one POST per event.
// Sends are fire-and-forget: preconditions and the circuit breaker are checked on the
// caller's goroutine, the request itself runs on its own goroutine.
package transport

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/adapter/httpclient"
	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/internal/utils"
)

const HeaderRequestChannel = "X-Splunk-Request-Channel"

// Transport posts events using the configuration held by a settings.Store.
type Transport struct {
	componentMetadata types.ComponentMetadata
	store             *settings.Store
	client            types.HTTPClientAdapter

	ctx    context.Context
	cancel context.CancelFunc

	inflight  sync.WaitGroup
	closeLock sync.RWMutex
	closed    atomic.Bool

	breakerLock sync.Mutex
	breaker     types.CircuitBreaker

	// Set only for the default client, which follows the store's timeout and retries.
	ownClient     bool
	clientLock    sync.Mutex
	clientTimeout time.Duration
	clientRetries int

	configLock sync.Mutex
	loggers    []types.Logger
	sensors    []types.Sensor
}

// NewTransport creates a transport reading store on every send. A nil client gets a
// default adapter configured from the store's timeout and retry settings.
func NewTransport(ctx context.Context, store *settings.Store, client types.HTTPClientAdapter, options ...types.Option[types.Transport]) *Transport {
	ctx, cancel := context.WithCancel(ctx)
	ownClient := client == nil
	if ownClient {
		client = httpclient.NewHTTPClientAdapter(
			httpclient.WithTimeout(store.RequestTimeout()),
			httpclient.WithMaxRetries(store.MaxRetries()),
		)
	}

	t := &Transport{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "TRANSPORT",
		},
		store:         store,
		client:        client,
		ctx:           ctx,
		cancel:        cancel,
		ownClient:     ownClient,
		clientTimeout: store.RequestTimeout(),
		clientRetries: store.MaxRetries(),
	}

	for _, option := range options {
		option(t)
	}

	return t
}

// syncClient applies timeout and retry changes made to the store since the last send.
func (t *Transport) syncClient(snap settings.Snapshot) {
	if !t.ownClient {
		return
	}
	t.clientLock.Lock()
	defer t.clientLock.Unlock()
	if snap.RequestTimeout != t.clientTimeout {
		t.clientTimeout = snap.RequestTimeout
		t.client.SetTimeout(snap.RequestTimeout)
	}
	if snap.MaxRetries != t.clientRetries {
		t.clientRetries = snap.MaxRetries
		t.client.SetMaxRetries(snap.MaxRetries)
	}
}
