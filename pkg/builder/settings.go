package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
)

type Settings = settings.Store

type SettingsSnapshot = settings.Snapshot

type SettingsOption = settings.Option

type SettingsFile = settings.File

type InvalidLevelError = settings.InvalidLevelError

var ErrInvalidLevel = settings.ErrInvalidLevel

const (
	SettingsEnvConfig = settings.EnvConfig
	SettingsEnvToken  = settings.EnvToken

	DefaultAuthScheme     = settings.DefaultAuthScheme
	DefaultRequestTimeout = settings.DefaultRequestTimeout
)

// NewSettings creates a configuration store. It fails only on an invalid level.
func NewSettings(options ...SettingsOption) (*Settings, error) {
	return settings.New(options...)
}

// DefaultSettings returns a store holding the defaults.
func DefaultSettings() *Settings {
	return settings.Default()
}

// LoadSettings reads the file named by SPLUNKLOGGER_CONFIG.
func LoadSettings() (*Settings, error) {
	return settings.Load()
}

// LoadSettingsFile reads a YAML or JSON configuration file.
func LoadSettingsFile(path string) (*Settings, error) {
	return settings.LoadFile(path)
}

func SettingsWithEndpoint(endpoint string) SettingsOption {
	return settings.WithEndpoint(endpoint)
}

func SettingsWithToken(token string) SettingsOption {
	return settings.WithToken(token)
}

func SettingsWithSource(source string) SettingsOption {
	return settings.WithSource(source)
}

// SettingsWithLevel sets the minimum forwarded severity.
func SettingsWithLevel(name string) SettingsOption {
	return settings.WithLevel(name)
}

// SettingsWithFields sets the fields merged into every event.
func SettingsWithFields(fields map[string]interface{}) SettingsOption {
	return settings.WithFields(fields)
}

// SettingsWithLabels sets the old to new key renames applied to every event.
func SettingsWithLabels(labels map[string]string) SettingsOption {
	return settings.WithLabels(labels)
}

func SettingsWithIncludeURL(flag bool) SettingsOption {
	return settings.WithIncludeURL(flag)
}

func SettingsWithIncludeTimestamp(flag bool) SettingsOption {
	return settings.WithIncludeTimestamp(flag)
}

func SettingsWithIncludeUserAgent(flag bool) SettingsOption {
	return settings.WithIncludeUserAgent(flag)
}

func SettingsWithTag(tag string) SettingsOption {
	return settings.WithTag(tag)
}

// SettingsWithSendConsoleErrors forwards error payloads and uncaught errors.
func SettingsWithSendConsoleErrors(flag bool) SettingsOption {
	return settings.WithSendConsoleErrors(flag)
}

func SettingsWithLogToConsole(flag bool) SettingsOption {
	return settings.WithLogToConsole(flag)
}

func SettingsWithLoggingEnabled(flag bool) SettingsOption {
	return settings.WithLoggingEnabled(flag)
}

// SettingsWithErrorThreshold stops sending after threshold consecutive failures.
func SettingsWithErrorThreshold(threshold int) SettingsOption {
	return settings.WithErrorThreshold(threshold)
}

func SettingsWithSourceType(sourceType string) SettingsOption {
	return settings.WithSourceType(sourceType)
}

func SettingsWithIndex(index string) SettingsOption {
	return settings.WithIndex(index)
}

func SettingsWithHost(host string) SettingsOption {
	return settings.WithHost(host)
}

func SettingsWithAuthScheme(scheme string) SettingsOption {
	return settings.WithAuthScheme(scheme)
}

// SettingsWithCompression selects the request body encoding: gzip, zstd, snappy, lz4 or brotli.
func SettingsWithCompression(name string) SettingsOption {
	return settings.WithCompression(name)
}

func SettingsWithRequestTimeout(timeout time.Duration) SettingsOption {
	return settings.WithRequestTimeout(timeout)
}

func SettingsWithMaxRetries(retries int) SettingsOption {
	return settings.WithMaxRetries(retries)
}

func SettingsWithRequestChannel(channel string) SettingsOption {
	return settings.WithRequestChannel(channel)
}

// SettingsWithGeneratedRequestChannel sets a random request channel identifier.
func SettingsWithGeneratedRequestChannel() SettingsOption {
	return settings.WithRequestChannel(uuid.NewString())
}
