package export

import (
	"context"

	"github.com/hsbo-copernicus/rasterproc/pkg/product"
)

// Artifact is the handle returned after exporting a processed product.
type Artifact struct {
	ID       string `json:"id"`
	Location string `json:"location"`
}

// Exporter writes a raster product to the result store. Export failures
// propagate to the caller, they are never logged and swallowed.
type Exporter interface {
	Export(ctx context.Context, p product.Product) (Artifact, error)
}
