package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/hsbo-copernicus/rasterproc/pkg/acquisition"
	"github.com/hsbo-copernicus/rasterproc/pkg/export"
	"github.com/hsbo-copernicus/rasterproc/pkg/geom"
	"github.com/hsbo-copernicus/rasterproc/pkg/processor"
	"github.com/sirupsen/logrus"
)

type dispatcher struct {
	registry *processor.Registry
	acquirer acquisition.Acquirer
	exporter export.Exporter
	log      *logrus.Entry
}

var _ Dispatcher = (*dispatcher)(nil)

func NewDispatcher(registry *processor.Registry, acquirer acquisition.Acquirer, exporter export.Exporter) Dispatcher {
	return &dispatcher{
		registry: registry,
		acquirer: acquirer,
		exporter: exporter,
		log:      logrus.WithField("component", "dispatch"),
	}
}

// Dispatch runs one request through the processing pipeline. The "none" type
// exports the raw acquired product. Every other type runs the mandatory
// correction stage first, then the stage registered under the type name if
// there is one. An unknown type degrades to correction-only on purpose, the
// caller still gets a corrected product instead of an error.
func (d *dispatcher) Dispatch(ctx context.Context, request Request) (export.Artifact, error) {
	area, err := geom.ParseExtent(request.Extent)
	if err != nil {
		return export.Artifact{}, err
	}

	// Correction is mandatory for every non-"none" path, so its absence is
	// detected before a portal download is wasted on a doomed request.
	var corrections processor.Processor
	if request.Type != processor.TypeNone {
		var found bool
		corrections, found = d.registry.Lookup(processor.TypeCorrection)
		if !found {
			return export.Artifact{}, ErrStageNotConfigured
		}
	}

	acquired, err := d.acquirer.Acquire(ctx, request.Start, request.End, area, request.Params)
	if err != nil {
		return export.Artifact{}, err
	}

	if request.Type == processor.TypeNone {
		return d.exporter.Export(ctx, acquired)
	}

	corrected, err := corrections.Transform(ctx, acquired)
	if err != nil {
		return export.Artifact{}, fmt.Errorf("correction stage failed: %w", err)
	}

	if request.Type == processor.TypeCorrection {
		return d.exporter.Export(ctx, corrected)
	}

	typed, found := d.registry.Lookup(request.Type)
	if !found {
		d.log.WithField("type", request.Type).
			Warn("no processor registered for requested type, exporting corrected product")
		return d.exporter.Export(ctx, corrected)
	}

	output, err := typed.Transform(ctx, corrected)
	if err != nil {
		return export.Artifact{}, fmt.Errorf("%s stage failed: %w", request.Type, err)
	}

	return d.exporter.Export(ctx, output)
}

var ErrStageNotConfigured = errors.New("mandatory correction stage is not registered")
