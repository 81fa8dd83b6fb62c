package acquisition

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hsbo-copernicus/rasterproc/pkg/geom"
	"github.com/hsbo-copernicus/rasterproc/pkg/product"
)

const defaultProductMimeType = "image/tiff"

type PortalConfig struct {
	PortalURL string
}

type portalCatalogEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
}

// PortalClient queries the acquisition portal catalog and downloads raw L1
// products. It does no retrying, portal failures propagate to the caller.
type PortalClient struct {
	config PortalConfig
	client *resty.Client
}

var _ Acquirer = (*PortalClient)(nil)

func NewPortalClient(config PortalConfig) *PortalClient {
	return &PortalClient{config, resty.New()}
}

// Acquire searches the catalog for scenes inside the given time window and
// bounding rectangle and downloads the first match.
func (c *PortalClient) Acquire(ctx context.Context, start, end time.Time, area geom.Rect, params map[string]string) (product.Product, error) {
	entries := []portalCatalogEntry{}

	request := c.client.R().
		SetContext(ctx).
		SetQueryParam("start", start.Format(time.RFC3339)).
		SetQueryParam("end", end.Format(time.RFC3339)).
		SetQueryParam("x1", formatCoordinate(area.P1.X)).
		SetQueryParam("y1", formatCoordinate(area.P1.Y)).
		SetQueryParam("x2", formatCoordinate(area.P2.X)).
		SetQueryParam("y2", formatCoordinate(area.P2.Y)).
		SetResult(&entries)

	for key, value := range params {
		request.SetQueryParam(key, value)
	}

	response, err := request.Get(c.config.PortalURL + "/products")
	if err != nil {
		return product.Product{}, fmt.Errorf("portal catalog search failed: %w", err)
	}

	if response.StatusCode() != 200 {
		return product.Product{}, ErrPortalUnavailable
	}

	if len(entries) == 0 {
		return product.Product{}, ErrNoProducts
	}

	entry := entries[0]
	download, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/products/%s/download", c.config.PortalURL, entry.ID))
	if err != nil {
		return product.Product{}, fmt.Errorf("product download failed: %w", err)
	}

	if download.StatusCode() != 200 {
		return product.Product{}, ErrPortalUnavailable
	}

	data := download.Body()
	if len(data) == 0 {
		return product.Product{}, ErrEmptyProduct
	}

	mimeType := entry.MimeType
	if mimeType == "" {
		mimeType = defaultProductMimeType
	}

	acquired := product.Product{
		ID:          entry.ID,
		SourceName:  entry.Name,
		MimeType:    mimeType,
		Size:        int64(len(data)),
		Data:        data,
		WindowStart: start,
		WindowEnd:   end,
	}

	return acquired, nil
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

var (
	ErrPortalUnavailable = errors.New("acquisition portal returned non-200 status code")
	ErrNoProducts        = errors.New("no products found for given time window and area")
	ErrEmptyProduct      = errors.New("acquisition portal returned empty product payload")
)
