package processor

import (
	"context"

	"github.com/hsbo-copernicus/rasterproc/pkg/product"
)

// Reserved processing type selectors. "none" is raw passthrough and skips
// every stage, "correction" stops after the mandatory correction stage. Any
// other selector addresses a registered processor by name.
const (
	TypeNone       = "none"
	TypeCorrection = "correction"
	TypeNDVI       = "ndvi"
)

// Processor is one named, pluggable transformation applied to a raster
// product. Transform is a pure function of its input, implementations must
// never mutate the product they are given.
type Processor interface {
	Name() string
	Transform(ctx context.Context, in product.Product) (product.Product, error)
}
