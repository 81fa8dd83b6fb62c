package snapprocessor

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/hsbo-copernicus/rasterproc/pkg/processor"
	"github.com/hsbo-copernicus/rasterproc/pkg/product"
)

type Config struct {
	ServiceURL string
}

// Processor runs one named operation of the SNAP-style processing backend.
// The backend receives the raster payload and answers with the transformed
// payload, the algorithm itself stays opaque to this client.
type Processor struct {
	config    Config
	name      string
	operation string
	client    *resty.Client
}

var _ processor.Processor = (*Processor)(nil)

func New(config Config, name, operation string) *Processor {
	return &Processor{
		config:    config,
		name:      name,
		operation: operation,
		client:    resty.New(),
	}
}

// NewCorrections builds the radiometric/geometric correction stage registered
// under the reserved "correction" name.
func NewCorrections(config Config) *Processor {
	return New(config, processor.TypeCorrection, "correction")
}

// NewNDVI builds the vegetation index stage registered under "ndvi". It
// expects corrected reflectance input, the dispatcher guarantees ordering.
func NewNDVI(config Config) *Processor {
	return New(config, processor.TypeNDVI, "ndvi")
}

func (p *Processor) Name() string {
	return p.name
}

func (p *Processor) Transform(ctx context.Context, in product.Product) (product.Product, error) {
	response, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", in.MimeType).
		SetBody(in.Data).
		Post(fmt.Sprintf("%s/%s", p.config.ServiceURL, p.operation))
	if err != nil {
		return product.Product{}, fmt.Errorf("%s operation request failed: %w", p.operation, err)
	}

	if response.StatusCode() != 200 {
		return product.Product{}, ErrResponseStatusNotOK
	}

	data := response.Body()
	if len(data) == 0 {
		return product.Product{}, ErrEmptyResponse
	}

	mimeType := response.Header().Get("Content-Type")
	if mimeType == "" {
		mimeType = in.MimeType
	}

	out := product.Product{
		ID:          uuid.NewString(),
		SourceName:  in.SourceName,
		MimeType:    mimeType,
		Size:        int64(len(data)),
		Data:        data,
		WindowStart: in.WindowStart,
		WindowEnd:   in.WindowEnd,
	}

	return out, nil
}

var (
	ErrResponseStatusNotOK = errors.New("processing backend returned non-200 status code")
	ErrEmptyResponse       = errors.New("processing backend returned empty product payload")
)
