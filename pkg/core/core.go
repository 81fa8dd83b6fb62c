package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hsbo-copernicus/rasterproc/pkg/acquisition"
	"github.com/hsbo-copernicus/rasterproc/pkg/dispatch"
	"github.com/hsbo-copernicus/rasterproc/pkg/export"
	"github.com/hsbo-copernicus/rasterproc/pkg/processor"
	snapprocessor "github.com/hsbo-copernicus/rasterproc/pkg/processor/snap"
)

// Core is the entry point for external applications. It owns the processor
// registry and dispatches processing requests over the acquisition and
// export collaborators. The owning process constructs it once and passes it
// by reference, there is no construct-on-first-use singleton.
type Core struct {
	registry   *processor.Registry
	dispatcher dispatch.Dispatcher
}

// New builds a core over the given collaborators and registers the supplied
// processors by name. An empty processor set is legal, but non-"none"
// requests fail until a "correction" processor is registered.
func New(acquirer acquisition.Acquirer, exporter export.Exporter, processors ...processor.Processor) *Core {
	registry := processor.NewRegistry()
	for _, p := range processors {
		registry.Register(p.Name(), p)
	}

	return &Core{
		registry:   registry,
		dispatcher: dispatch.NewDispatcher(registry, acquirer, exporter),
	}
}

// DefaultProcessors builds the default stage set: the mandatory correction
// stage and the NDVI vegetation index stage.
func DefaultProcessors(config snapprocessor.Config) []processor.Processor {
	return []processor.Processor{
		snapprocessor.NewCorrections(config),
		snapprocessor.NewNDVI(config),
	}
}

// Request runs one processing request and returns the export artifact
// handle. It blocks until the collaborators answer, timeout policy belongs
// to the caller's context.
func (c *Core) Request(ctx context.Context, start, end time.Time, extent string, params map[string]string, processingType string) (export.Artifact, error) {
	request := dispatch.Request{
		Start:  start,
		End:    end,
		Extent: extent,
		Params: params,
		Type:   processingType,
	}

	return c.dispatcher.Dispatch(ctx, request)
}

// AddProcessor registers the processor under its own name and returns that
// name. Registering over an existing name replaces the prior processor.
func (c *Core) AddProcessor(p processor.Processor) string {
	c.registry.Register(p.Name(), p)
	return p.Name()
}

// AddProcessors registers every given processor and returns the sorted set
// of names available afterwards, pre-existing ones included.
func (c *Core) AddProcessors(processors ...processor.Processor) []string {
	mapping := make(map[string]processor.Processor, len(processors))
	for _, p := range processors {
		mapping[p.Name()] = p
	}

	return c.registry.RegisterAll(mapping)
}

// Processors returns a snapshot of all currently available processors.
func (c *Core) Processors() map[string]processor.Processor {
	return c.registry.All()
}

var (
	defaultMu   sync.Mutex
	defaultCore *Core
)

// SetDefault installs the process-wide shared instance. Reconfiguring after
// the first call is an explicit error, never a silent no-op.
func SetDefault(c *Core) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultCore != nil {
		return ErrAlreadyInitialized
	}

	defaultCore = c
	return nil
}

// Default returns the shared instance installed by SetDefault.
func Default() (*Core, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultCore == nil {
		return nil, ErrNotInitialized
	}

	return defaultCore, nil
}

var (
	ErrAlreadyInitialized = errors.New("default core instance already initialized")
	ErrNotInitialized     = errors.New("default core instance not initialized")
)
