package exportrepositories

import (
	"context"
	"io"
	"time"
)

// ArtifactModel is the catalog document recorded for every exported product.
type ArtifactModel struct {
	ArtifactID string `json:"artifactID" bson:"artifactID"`
	ObjectName string `json:"objectName" bson:"objectName"`

	SourceName string `json:"sourceName" bson:"sourceName"`
	MimeType   string `json:"mimeType" bson:"mimeType"`
	Size       int64  `json:"size" bson:"size"`

	WindowStart time.Time `json:"windowStart" bson:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd" bson:"windowEnd"`
	ExportedAt  time.Time `json:"exportedAt" bson:"exportedAt"`
}

type ArtifactsRepository interface {
	CreateArtifactInfo(ctx context.Context, info ArtifactModel) error
	GetArtifactInfo(ctx context.Context, artifactID string) (ArtifactModel, error)
	DeleteArtifactInfo(ctx context.Context, artifactID string) error
}

type ArtifactsStorage interface {
	Save(ctx context.Context, objectName, mimeType string, size int64, reader io.Reader) error
	Delete(ctx context.Context, objectName string) error
	Location(objectName string) string
}
