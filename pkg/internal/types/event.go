package types

import "context"

// Event is the wire form of a composed log event, shaped for an HTTP Event Collector.
// Top-level keys are collector metadata; Event carries the merged and relabeled fields.
type Event struct {
	Time       *float64               `json:"time,omitempty"`
	Host       string                 `json:"host,omitempty"`
	Source     string                 `json:"source,omitempty"`
	SourceType string                 `json:"sourcetype,omitempty"`
	Index      string                 `json:"index,omitempty"`
	Event      map[string]interface{} `json:"event"`
}

// Environment exposes the ambient values the composer may attach to an event.
type Environment interface {
	URL() string
	UserAgent() string
}

// StaticEnvironment is an Environment with fixed values.
type StaticEnvironment struct {
	CurrentURL string
	Agent      string
}

func (e StaticEnvironment) URL() string       { return e.CurrentURL }
func (e StaticEnvironment) UserAgent() string { return e.Agent }

type environmentKey struct{}

// ContextWithEnvironment scopes an Environment to ctx, for example the request being served.
func ContextWithEnvironment(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, environmentKey{}, env)
}

// EnvironmentFromContext returns the Environment stored in ctx, if any.
func EnvironmentFromContext(ctx context.Context) (Environment, bool) {
	if ctx == nil {
		return nil, false
	}
	env, ok := ctx.Value(environmentKey{}).(Environment)
	return env, ok && env != nil
}
