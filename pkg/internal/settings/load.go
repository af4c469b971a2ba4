package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfig names the environment variable holding the configuration file path.
	EnvConfig = "SPLUNKLOGGER_CONFIG"
	// EnvToken overrides the token from the configuration file when set.
	EnvToken = "SPLUNKLOGGER_TOKEN"
)

// File is the on-disk form of the configuration. Unset pointer fields keep defaults.
type File struct {
	Endpoint          string                 `yaml:"endpoint" json:"endpoint"`
	Token             string                 `yaml:"token" json:"token"`
	Source            string                 `yaml:"source" json:"source"`
	Level             string                 `yaml:"level" json:"level"`
	Fields            map[string]interface{} `yaml:"fields" json:"fields"`
	Labels            map[string]string      `yaml:"labels" json:"labels"`
	IncludeURL        *bool                  `yaml:"include_url" json:"include_url"`
	IncludeTimestamp  *bool                  `yaml:"include_timestamp" json:"include_timestamp"`
	IncludeUserAgent  *bool                  `yaml:"include_user_agent" json:"include_user_agent"`
	Tag               string                 `yaml:"tag" json:"tag"`
	SendConsoleErrors *bool                  `yaml:"send_console_errors" json:"send_console_errors"`
	LogToConsole      *bool                  `yaml:"log_to_console" json:"log_to_console"`
	LoggingEnabled    *bool                  `yaml:"logging_enabled" json:"logging_enabled"`
	ErrorThreshold    *int                   `yaml:"error_threshold" json:"error_threshold"`

	SourceType     string `yaml:"sourcetype" json:"sourcetype"`
	Index          string `yaml:"index" json:"index"`
	Host           string `yaml:"host" json:"host"`
	AuthScheme     string `yaml:"auth_scheme" json:"auth_scheme"`
	Compression    string `yaml:"compression" json:"compression"`
	RequestTimeout string `yaml:"request_timeout" json:"request_timeout"`
	MaxRetries     *int   `yaml:"max_retries" json:"max_retries"`
	RequestChannel string `yaml:"request_channel" json:"request_channel"`
}

// Load reads the file named by SPLUNKLOGGER_CONFIG.
func Load() (*Store, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set", EnvConfig)
	}
	return LoadFile(path)
}

// LoadFile reads a YAML (.yaml, .yml) or JSON (.json, .jsonc; comments allowed)
// configuration file into a new Store.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	file, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	store := Default()
	if err := file.Apply(store); err != nil {
		return nil, fmt.Errorf("applying config %s: %w", path, err)
	}
	if token := os.Getenv(EnvToken); token != "" {
		store.SetToken(token)
	}
	return store, nil
}

// Parse decodes data according to a file extension.
func Parse(data []byte, ext string) (*File, error) {
	var file File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return &file, nil
}

// Apply copies every set value of f into store. Validation failures leave the
// remaining fields unapplied.
func (f *File) Apply(store *Store) error {
	if store == nil {
		return errors.New("nil store")
	}
	if f.Level != "" {
		if err := store.SetLevel(f.Level); err != nil {
			return err
		}
	}
	if f.RequestTimeout != "" {
		timeout, err := time.ParseDuration(f.RequestTimeout)
		if err != nil {
			return fmt.Errorf("request_timeout: %w", err)
		}
		store.SetRequestTimeout(timeout)
	}

	if f.Endpoint != "" {
		store.SetEndpoint(f.Endpoint)
	}
	if f.Token != "" {
		store.SetToken(f.Token)
	}
	if f.Source != "" {
		store.SetSource(f.Source)
	}
	if f.Fields != nil {
		store.SetFields(f.Fields)
	}
	if f.Labels != nil {
		store.SetLabels(f.Labels)
	}
	if f.IncludeURL != nil {
		store.SetIncludeURL(*f.IncludeURL)
	}
	if f.IncludeTimestamp != nil {
		store.SetIncludeTimestamp(*f.IncludeTimestamp)
	}
	if f.IncludeUserAgent != nil {
		store.SetIncludeUserAgent(*f.IncludeUserAgent)
	}
	if f.Tag != "" {
		store.SetTag(f.Tag)
	}
	if f.SendConsoleErrors != nil {
		store.SetSendConsoleErrors(*f.SendConsoleErrors)
	}
	if f.LogToConsole != nil {
		store.SetLogToConsole(*f.LogToConsole)
	}
	if f.LoggingEnabled != nil {
		store.SetLoggingEnabled(*f.LoggingEnabled)
	}
	if f.ErrorThreshold != nil {
		store.SetErrorThreshold(*f.ErrorThreshold)
	}
	if f.SourceType != "" {
		store.SetSourceType(f.SourceType)
	}
	if f.Index != "" {
		store.SetIndex(f.Index)
	}
	if f.Host != "" {
		store.SetHost(f.Host)
	}
	if f.AuthScheme != "" {
		store.SetAuthScheme(f.AuthScheme)
	}
	if f.Compression != "" {
		store.SetCompression(f.Compression)
	}
	if f.MaxRetries != nil {
		store.SetMaxRetries(*f.MaxRetries)
	}
	if f.RequestChannel != "" {
		store.SetRequestChannel(f.RequestChannel)
	}
	return nil
}
