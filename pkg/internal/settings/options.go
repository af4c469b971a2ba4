package settings

import "time"

// WithEndpoint sets the collector URL.
func WithEndpoint(endpoint string) Option {
	return func(s *Store) error {
		s.SetEndpoint(endpoint)
		return nil
	}
}

// WithToken sets the collector credential.
func WithToken(token string) Option {
	return func(s *Store) error {
		s.SetToken(token)
		return nil
	}
}

func WithSource(source string) Option {
	return func(s *Store) error {
		s.SetSource(source)
		return nil
	}
}

// WithLevel sets the minimum forwarded severity; unknown names fail New.
func WithLevel(name string) Option {
	return func(s *Store) error {
		return s.SetLevel(name)
	}
}

func WithFields(fields map[string]interface{}) Option {
	return func(s *Store) error {
		s.SetFields(fields)
		return nil
	}
}

func WithLabels(labels map[string]string) Option {
	return func(s *Store) error {
		s.SetLabels(labels)
		return nil
	}
}

func WithIncludeURL(flag bool) Option {
	return func(s *Store) error {
		s.SetIncludeURL(flag)
		return nil
	}
}

func WithIncludeTimestamp(flag bool) Option {
	return func(s *Store) error {
		s.SetIncludeTimestamp(flag)
		return nil
	}
}

func WithIncludeUserAgent(flag bool) Option {
	return func(s *Store) error {
		s.SetIncludeUserAgent(flag)
		return nil
	}
}

func WithTag(tag string) Option {
	return func(s *Store) error {
		s.SetTag(tag)
		return nil
	}
}

func WithSendConsoleErrors(flag bool) Option {
	return func(s *Store) error {
		s.SetSendConsoleErrors(flag)
		return nil
	}
}

func WithLogToConsole(flag bool) Option {
	return func(s *Store) error {
		s.SetLogToConsole(flag)
		return nil
	}
}

func WithLoggingEnabled(flag bool) Option {
	return func(s *Store) error {
		s.SetLoggingEnabled(flag)
		return nil
	}
}

// WithErrorThreshold enables the consecutive-failure circuit breaker.
func WithErrorThreshold(threshold int) Option {
	return func(s *Store) error {
		s.SetErrorThreshold(threshold)
		return nil
	}
}

func WithSourceType(sourceType string) Option {
	return func(s *Store) error {
		s.SetSourceType(sourceType)
		return nil
	}
}

func WithIndex(index string) Option {
	return func(s *Store) error {
		s.SetIndex(index)
		return nil
	}
}

func WithHost(host string) Option {
	return func(s *Store) error {
		s.SetHost(host)
		return nil
	}
}

func WithAuthScheme(scheme string) Option {
	return func(s *Store) error {
		s.SetAuthScheme(scheme)
		return nil
	}
}

func WithCompression(name string) Option {
	return func(s *Store) error {
		s.SetCompression(name)
		return nil
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(s *Store) error {
		s.SetRequestTimeout(timeout)
		return nil
	}
}

func WithMaxRetries(retries int) Option {
	return func(s *Store) error {
		s.SetMaxRetries(retries)
		return nil
	}
}

func WithRequestChannel(channel string) Option {
	return func(s *Store) error {
		s.SetRequestChannel(channel)
		return nil
	}
}
