package acquisition

import (
	"context"
	"time"

	"github.com/hsbo-copernicus/rasterproc/pkg/geom"
	"github.com/hsbo-copernicus/rasterproc/pkg/product"
)

// Acquirer turns a time window and an area of interest into a raw raster
// product downloaded from the acquisition portal. Additional parameters are
// passed through to the portal unmodified.
type Acquirer interface {
	Acquire(ctx context.Context, start, end time.Time, area geom.Rect, params map[string]string) (product.Product, error)
}
