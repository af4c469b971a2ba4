// Package forwarder is the runtime service behind the log dispatch: it composes
// payloads against the current settings and hands the events to a transport.
package forwarder

import (
	"context"
	"sync"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
	"github.com/joeydtaylor/splunklogger/pkg/internal/transport"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/internal/utils"
)

// Forwarder implements types.Forwarder.
type Forwarder struct {
	componentMetadata types.ComponentMetadata
	store             *settings.Store
	transport         types.Transport
	env               types.Environment

	lastLogLock sync.Mutex
	lastLog     time.Time

	attachOnce sync.Once

	configLock sync.Mutex
	loggers    []types.Logger
	sensors    []types.Sensor
}

// NewForwarder creates a forwarder for store. A nil transport gets the default
// transport bound to ctx.
func NewForwarder(ctx context.Context, store *settings.Store, t types.Transport, options ...types.Option[types.Forwarder]) *Forwarder {
	if t == nil {
		t = transport.NewTransport(ctx, store, nil)
	}

	f := &Forwarder{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "FORWARDER",
		},
		store:     store,
		transport: t,
	}

	for _, option := range options {
		option(f)
	}

	return f
}
