package product

import "time"

// Product is the opaque raster handle passed from the acquisition portal
// through the processing stages to the exporter. The dispatch pipeline only
// forwards it and never interprets the payload.
type Product struct {
	ID         string
	SourceName string
	MimeType   string
	Size       int64
	Data       []byte

	WindowStart time.Time
	WindowEnd   time.Time
}
