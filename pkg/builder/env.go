package builder

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvOr returns the env value with surrounding quotes and spaces removed, or def when empty.
func EnvOr(key, def string) string {
	v := strings.TrimSpace(strings.Trim(os.Getenv(key), `"'`))
	if v == "" {
		return def
	}
	return v
}

func envParsed[T any](key string, def T, parse func(string) (T, error)) T {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	parsed, err := parse(v)
	if err != nil {
		return def
	}
	return parsed
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	return envParsed(key, def, strconv.Atoi)
}

// EnvBoolOr returns the parsed bool env value or def on empty/parse failure.
func EnvBoolOr(key string, def bool) bool {
	return envParsed(key, def, strconv.ParseBool)
}

// EnvDurationOr parses values such as "750ms" or "5s", returning def on empty/parse failure.
func EnvDurationOr(key string, def time.Duration) time.Duration {
	return envParsed(key, def, time.ParseDuration)
}
