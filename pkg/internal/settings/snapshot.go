package settings

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/internal/utils"
)

// Snapshot is a point-in-time copy of a Store. Its maps are private copies.
type Snapshot struct {
	Endpoint          string
	Token             string
	Source            string
	MinLevel          types.Severity
	Fields            map[string]interface{}
	Labels            map[string]string
	IncludeURL        bool
	IncludeTimestamp  bool
	IncludeUserAgent  bool
	Tag               string
	SendConsoleErrors bool
	LogToConsole      bool
	LoggingEnabled    bool
	ErrorThreshold    *int

	SourceType     string
	Index          string
	Host           string
	AuthScheme     string
	Compression    string
	RequestTimeout time.Duration
	MaxRetries     int
	RequestChannel string
}

// Snapshot copies the current configuration under a single read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Endpoint:          s.endpoint,
		Token:             s.token,
		Source:            s.source,
		MinLevel:          s.minLevel,
		Fields:            utils.CopyFields(s.fields),
		Labels:            utils.CopyLabels(s.labels),
		IncludeURL:        s.includeURL,
		IncludeTimestamp:  s.includeTimestamp,
		IncludeUserAgent:  s.includeUserAgent,
		Tag:               s.tag,
		SendConsoleErrors: s.sendConsoleErrors,
		LogToConsole:      s.logToConsole,
		LoggingEnabled:    s.loggingEnabled,
		SourceType:        s.sourceType,
		Index:             s.index,
		Host:              s.host,
		AuthScheme:        s.authScheme,
		Compression:       s.compression,
		RequestTimeout:    s.requestTimeout,
		MaxRetries:        s.maxRetries,
		RequestChannel:    s.requestChannel,
	}
	if s.errorThreshold != nil {
		threshold := *s.errorThreshold
		snap.ErrorThreshold = &threshold
	}
	return snap
}

// CanSend reports whether the sending preconditions hold.
func (snap Snapshot) CanSend() bool {
	return snap.Token != "" && snap.Endpoint != "" && snap.LoggingEnabled
}
