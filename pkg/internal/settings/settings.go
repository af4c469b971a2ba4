// Package settings holds the forwarding pipeline's tunables. A Store is created once at
// start-up and shared by pointer with every component; it is only mutated through its
// accessor methods, each of which is safe for concurrent use.
package settings

import (
	"sync"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

const (
	DefaultAuthScheme     = "Splunk"
	DefaultRequestTimeout = 30 * time.Second
)

// Option configures a Store during New.
type Option func(*Store) error

// Store is the single source of truth for pipeline configuration.
type Store struct {
	mu sync.RWMutex

	endpoint          string
	token             string
	source            string
	minLevel          types.Severity
	fields            map[string]interface{}
	labels            map[string]string
	includeURL        bool
	includeTimestamp  bool
	includeUserAgent  bool
	tag               string
	sendConsoleErrors bool
	logToConsole      bool
	loggingEnabled    bool
	errorThreshold    *int

	sourceType     string
	index          string
	host           string
	authScheme     string
	compression    string
	requestTimeout time.Duration
	maxRetries     int
	requestChannel string
}

// New returns a Store holding the defaults with options applied in order.
func New(options ...Option) (*Store, error) {
	s := &Store{
		minLevel:       types.SeverityDebug,
		fields:         map[string]interface{}{},
		labels:         map[string]string{},
		logToConsole:   true,
		loggingEnabled: true,
		authScheme:     DefaultAuthScheme,
		requestTimeout: DefaultRequestTimeout,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Default returns a Store holding only the defaults.
func Default() *Store {
	s, _ := New()
	return s
}
