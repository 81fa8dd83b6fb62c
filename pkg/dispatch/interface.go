package dispatch

import (
	"context"
	"time"

	"github.com/hsbo-copernicus/rasterproc/pkg/export"
)

// Request describes one processing request: the acquisition time window, the
// serialized spatial extent ("x1|y1|x2|y2"), free-form parameters forwarded
// to the acquisition portal, and the processing type selector.
type Request struct {
	Start  time.Time
	End    time.Time
	Extent string
	Params map[string]string
	Type   string
}

type Dispatcher interface {
	Dispatch(ctx context.Context, request Request) (export.Artifact, error)
}
