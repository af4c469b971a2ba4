package settings

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/internal/utils"
)

// Endpoint returns the collector URL. Empty disables sending.
func (s *Store) Endpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.endpoint
}

// SetEndpoint sets the collector URL.
func (s *Store) SetEndpoint(endpoint string) *Store {
	s.mu.Lock()
	s.endpoint = endpoint
	s.mu.Unlock()
	return s
}

// Token returns the collector credential. Empty disables sending.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) SetToken(token string) *Store {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return s
}

// Source returns the top-level source tag, empty when unset.
func (s *Store) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *Store) SetSource(source string) *Store {
	s.mu.Lock()
	s.source = source
	s.mu.Unlock()
	return s
}

// Level returns the name of the minimum forwarded severity.
func (s *Store) Level() string {
	return s.MinLevel().String()
}

// MinLevel returns the minimum forwarded severity.
func (s *Store) MinLevel() types.Severity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minLevel
}

// SetLevel sets the minimum forwarded severity by name, case-insensitively.
// An unknown name returns an *InvalidLevelError and keeps the previous level.
func (s *Store) SetLevel(name string) error {
	level, ok := types.ParseSeverity(name)
	if !ok {
		return &InvalidLevelError{Name: name}
	}
	s.mu.Lock()
	s.minLevel = level
	s.mu.Unlock()
	return nil
}

// SetMinLevel sets the minimum forwarded severity. Values outside the four
// severities are rejected like unknown names.
func (s *Store) SetMinLevel(level types.Severity) error {
	if !level.Valid() {
		return &InvalidLevelError{Name: level.String()}
	}
	s.mu.Lock()
	s.minLevel = level
	s.mu.Unlock()
	return nil
}

// IsLevelEnabled reports whether events of the named severity pass the gate.
// Unknown names are never enabled.
func (s *Store) IsLevelEnabled(name string) bool {
	level, ok := types.ParseSeverity(name)
	if !ok {
		return false
	}
	return s.IsSeverityEnabled(level)
}

func (s *Store) IsSeverityEnabled(level types.Severity) bool {
	return level.Valid() && level >= s.MinLevel()
}

// Fields returns a copy of the fields merged into every event.
func (s *Store) Fields() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return utils.CopyFields(s.fields)
}

// SetFields replaces the extra fields wholesale.
func (s *Store) SetFields(fields map[string]interface{}) *Store {
	copied := utils.CopyFields(fields)
	s.mu.Lock()
	s.fields = copied
	s.mu.Unlock()
	return s
}

// Labels returns a copy of the old->new key renames applied to every event.
func (s *Store) Labels() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return utils.CopyLabels(s.labels)
}

// SetLabels replaces the label map wholesale.
func (s *Store) SetLabels(labels map[string]string) *Store {
	copied := utils.CopyLabels(labels)
	s.mu.Lock()
	s.labels = copied
	s.mu.Unlock()
	return s
}

func (s *Store) IncludeURL() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.includeURL
}

func (s *Store) SetIncludeURL(flag bool) *Store {
	s.mu.Lock()
	s.includeURL = flag
	s.mu.Unlock()
	return s
}

func (s *Store) IncludeTimestamp() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.includeTimestamp
}

func (s *Store) SetIncludeTimestamp(flag bool) *Store {
	s.mu.Lock()
	s.includeTimestamp = flag
	s.mu.Unlock()
	return s
}

func (s *Store) IncludeUserAgent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.includeUserAgent
}

func (s *Store) SetIncludeUserAgent(flag bool) *Store {
	s.mu.Lock()
	s.includeUserAgent = flag
	s.mu.Unlock()
	return s
}

// Tag returns the identifying tag carried with events, empty when unset.
func (s *Store) Tag() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tag
}

func (s *Store) SetTag(tag string) *Store {
	s.mu.Lock()
	s.tag = tag
	s.mu.Unlock()
	return s
}

// SendConsoleErrors reports whether error payloads and uncaught errors are forwarded.
func (s *Store) SendConsoleErrors() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sendConsoleErrors
}

func (s *Store) SetSendConsoleErrors(flag bool) *Store {
	s.mu.Lock()
	s.sendConsoleErrors = flag
	s.mu.Unlock()
	return s
}

// LogToConsole reports whether intercepted calls still reach the native console.
func (s *Store) LogToConsole() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logToConsole
}

func (s *Store) SetLogToConsole(flag bool) *Store {
	s.mu.Lock()
	s.logToConsole = flag
	s.mu.Unlock()
	return s
}

// LoggingEnabled is the master forwarding switch.
func (s *Store) LoggingEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggingEnabled
}

func (s *Store) SetLoggingEnabled(flag bool) *Store {
	s.mu.Lock()
	s.loggingEnabled = flag
	s.mu.Unlock()
	return s
}

// ErrorThreshold returns the consecutive-failure cap and whether one is configured.
func (s *Store) ErrorThreshold() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.errorThreshold == nil {
		return 0, false
	}
	return *s.errorThreshold, true
}

// SetErrorThreshold enables the circuit breaker with the given cap.
func (s *Store) SetErrorThreshold(threshold int) *Store {
	s.mu.Lock()
	s.errorThreshold = &threshold
	s.mu.Unlock()
	return s
}

// ClearErrorThreshold disables the circuit breaker.
func (s *Store) ClearErrorThreshold() *Store {
	s.mu.Lock()
	s.errorThreshold = nil
	s.mu.Unlock()
	return s
}

func (s *Store) SourceType() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sourceType
}

func (s *Store) SetSourceType(sourceType string) *Store {
	s.mu.Lock()
	s.sourceType = sourceType
	s.mu.Unlock()
	return s
}

func (s *Store) Index() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

func (s *Store) SetIndex(index string) *Store {
	s.mu.Lock()
	s.index = index
	s.mu.Unlock()
	return s
}

func (s *Store) Host() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.host
}

func (s *Store) SetHost(host string) *Store {
	s.mu.Lock()
	s.host = host
	s.mu.Unlock()
	return s
}

// AuthScheme returns the Authorization scheme placed before the token.
func (s *Store) AuthScheme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authScheme
}

func (s *Store) SetAuthScheme(scheme string) *Store {
	s.mu.Lock()
	s.authScheme = scheme
	s.mu.Unlock()
	return s
}

// Compression returns the request body encoding name, empty for none.
func (s *Store) Compression() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.compression
}

func (s *Store) SetCompression(name string) *Store {
	s.mu.Lock()
	s.compression = name
	s.mu.Unlock()
	return s
}

// RequestTimeout returns the HTTP client's own per-request timeout.
func (s *Store) RequestTimeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requestTimeout
}

func (s *Store) SetRequestTimeout(timeout time.Duration) *Store {
	s.mu.Lock()
	s.requestTimeout = timeout
	s.mu.Unlock()
	return s
}

// MaxRetries returns how many times a 5xx response is retried inside one send.
func (s *Store) MaxRetries() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxRetries
}

func (s *Store) SetMaxRetries(retries int) *Store {
	s.mu.Lock()
	s.maxRetries = retries
	s.mu.Unlock()
	return s
}

// RequestChannel returns the collector request channel id, empty when unset.
func (s *Store) RequestChannel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requestChannel
}

func (s *Store) SetRequestChannel(channel string) *Store {
	s.mu.Lock()
	s.requestChannel = channel
	s.mu.Unlock()
	return s
}
