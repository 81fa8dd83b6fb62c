package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	exportrepositories "github.com/hsbo-copernicus/rasterproc/pkg/export/repositories"
	"github.com/hsbo-copernicus/rasterproc/pkg/product"
)

const (
	resultObjectPrefix    = "results"
	defaultOutputMimeType = "image/tiff"
)

type exportService struct {
	artifactsRepository exportrepositories.ArtifactsRepository
	artifactsStorage    exportrepositories.ArtifactsStorage
}

var _ Exporter = (*exportService)(nil)

func NewExportService(
	artifactsRepository exportrepositories.ArtifactsRepository,
	artifactsStorage exportrepositories.ArtifactsStorage,
) Exporter {
	return &exportService{
		artifactsRepository,
		artifactsStorage,
	}
}

// Export writes the product payload to the result object store and records
// an artifact document in the catalog. The catalog write is rolled back if
// impossible, a failed object write leaves nothing behind.
func (s *exportService) Export(ctx context.Context, p product.Product) (Artifact, error) {
	artifactID := uuid.NewString()
	objectName := fmt.Sprintf("%s/%s.tif", resultObjectPrefix, artifactID)

	mimeType := p.MimeType
	if mimeType == "" {
		mimeType = defaultOutputMimeType
	}

	if err := s.artifactsStorage.Save(ctx, objectName, mimeType, p.Size, bytes.NewReader(p.Data)); err != nil {
		return Artifact{}, fmt.Errorf("artifact object write failed: %w", err)
	}

	info := exportrepositories.ArtifactModel{
		ArtifactID: artifactID,
		ObjectName: objectName,

		SourceName: p.SourceName,
		MimeType:   mimeType,
		Size:       p.Size,

		WindowStart: p.WindowStart,
		WindowEnd:   p.WindowEnd,
		ExportedAt:  time.Now().UTC(),
	}

	if err := s.artifactsRepository.CreateArtifactInfo(ctx, info); err != nil {
		s.artifactsStorage.Delete(ctx, objectName)
		return Artifact{}, fmt.Errorf("artifact catalog write failed: %w", err)
	}

	return Artifact{
		ID:       artifactID,
		Location: s.artifactsStorage.Location(objectName),
	}, nil
}
