package builder

import (
	"context"

	"github.com/joeydtaylor/splunklogger/pkg/internal/dispatch"
	"github.com/joeydtaylor/splunklogger/pkg/internal/errorcapture"
	"github.com/joeydtaylor/splunklogger/pkg/internal/forwarder"
	"github.com/joeydtaylor/splunklogger/pkg/internal/transport"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// Pipeline is a fully wired forwarding stack sharing one Settings store.
type Pipeline struct {
	Settings   *Settings
	Transport  *transport.Transport
	Forwarder  *forwarder.Forwarder
	Dispatcher *dispatch.Dispatcher
	Errors     *errorcapture.Registry
}

type pipelineConfig struct {
	client        types.HTTPClientAdapter
	loggers       []types.Logger
	sensors       []types.Sensor
	console       types.Console
	env           types.Environment
	legacyLogger  bool
	errorRegistry *errorcapture.Registry
}

// PipelineOption configures NewPipeline.
type PipelineOption func(*pipelineConfig)

func PipelineWithHTTPClient(client types.HTTPClientAdapter) PipelineOption {
	return func(c *pipelineConfig) { c.client = client }
}

// PipelineWithLogger connects diagnostic loggers to every component.
func PipelineWithLogger(loggers ...types.Logger) PipelineOption {
	return func(c *pipelineConfig) { c.loggers = append(c.loggers, loggers...) }
}

// PipelineWithSensor connects sensors to every component.
func PipelineWithSensor(sensors ...types.Sensor) PipelineOption {
	return func(c *pipelineConfig) { c.sensors = append(c.sensors, sensors...) }
}

func PipelineWithConsole(console Console) PipelineOption {
	return func(c *pipelineConfig) { c.console = console }
}

func PipelineWithEnvironment(env Environment) PipelineOption {
	return func(c *pipelineConfig) { c.env = env }
}

func PipelineWithLegacyLoggerField(legacy bool) PipelineOption {
	return func(c *pipelineConfig) { c.legacyLogger = legacy }
}

// PipelineWithErrorRegistry attaches to an existing registry, keeping its observers.
func PipelineWithErrorRegistry(registry *errorcapture.Registry) PipelineOption {
	return func(c *pipelineConfig) { c.errorRegistry = registry }
}

// NewPipeline wires transport, forwarder, dispatcher and error registry around store.
// The forwarder observes the registry when console errors are enabled.
func NewPipeline(ctx context.Context, store *Settings, options ...PipelineOption) *Pipeline {
	cfg := &pipelineConfig{}
	for _, option := range options {
		option(cfg)
	}

	t := transport.NewTransport(ctx, store, cfg.client,
		transport.WithLogger(cfg.loggers...),
		transport.WithSensor(cfg.sensors...),
	)

	fwdOptions := []types.Option[types.Forwarder]{forwarder.WithLogger(cfg.loggers...)}
	if cfg.env != nil {
		fwdOptions = append(fwdOptions, forwarder.WithEnvironment(cfg.env))
	}
	fwd := forwarder.NewForwarder(ctx, store, t, fwdOptions...)

	dispatchOptions := []types.Option[types.Dispatcher]{
		dispatch.WithLogger(cfg.loggers...),
		dispatch.WithLegacyLoggerField(cfg.legacyLogger),
	}
	if cfg.console != nil {
		dispatchOptions = append(dispatchOptions, dispatch.WithConsole(cfg.console))
	}
	d := dispatch.NewDispatcher(store, fwd, dispatchOptions...)

	registry := cfg.errorRegistry
	if registry == nil {
		registry = errorcapture.NewRegistry()
	}
	registry.ConnectLogger(cfg.loggers...)
	registry.ConnectSensor(cfg.sensors...)
	fwd.Attach(registry)

	return &Pipeline{
		Settings:   store,
		Transport:  t,
		Forwarder:  fwd,
		Dispatcher: d,
		Errors:     registry,
	}
}

// GetLogger returns a named sub-logger of the pipeline's dispatcher.
func (p *Pipeline) GetLogger(name string) LeveledLogger {
	return p.Dispatcher.GetLogger(name)
}

// Wait blocks until every in-flight send has completed.
func (p *Pipeline) Wait() {
	p.Forwarder.Wait()
}

// Close stops accepting sends and waits for in-flight ones until ctx ends.
func (p *Pipeline) Close(ctx context.Context) error {
	return p.Forwarder.Close(ctx)
}
