// Package circuitbreaker counts consecutive send failures and stops further attempts once
// the count reaches a threshold. Unlike a timed breaker it never half-opens on its own:
// it stays open until a success is recorded, the breaker is reset, or the threshold changes.
package circuitbreaker

import (
	"sync"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/internal/utils"
)

// CircuitBreaker is a closed/open state machine driven by a consecutive failure counter.
// All counter updates happen under stateLock, so completions from concurrent sends never
// interleave a read-modify-write.
type CircuitBreaker struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	sensors           []types.Sensor
	configLock        sync.Mutex

	stateLock sync.Mutex
	threshold int
	failures  int

	resetNotifyChan chan struct{}
}

// NewCircuitBreaker creates a closed breaker that opens after threshold consecutive failures.
// A threshold of zero or less refuses every attempt.
func NewCircuitBreaker(threshold int, options ...types.Option[types.CircuitBreaker]) types.CircuitBreaker {
	cb := &CircuitBreaker{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "CIRCUIT_BREAKER",
		},
		threshold:       threshold,
		resetNotifyChan: make(chan struct{}, 1),
	}

	for _, option := range options {
		option(cb)
	}

	return cb
}
