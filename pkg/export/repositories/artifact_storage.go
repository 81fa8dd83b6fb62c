package exportrepositories

import (
	"context"
	"errors"
	"io"

	dbconnections "github.com/hsbo-copernicus/rasterproc/pkg/export/repositories/connections"
)

type artifactsStorage struct {
	conn dbconnections.MinioBlockStorageConnection
}

var _ ArtifactsStorage = (*artifactsStorage)(nil)

func NewArtifactsStorage(conn dbconnections.MinioBlockStorageConnection) ArtifactsStorage {
	return &artifactsStorage{conn}
}

func (s *artifactsStorage) Save(ctx context.Context, objectName, mimeType string, size int64, reader io.Reader) error {
	exists, err := s.conn.ObjectExists(ctx, objectName)
	if err != nil {
		return err
	}
	if exists {
		return ErrObjectAlreadyExists
	}

	return s.conn.PutObject(ctx, objectName, size, mimeType, reader)
}

func (s *artifactsStorage) Delete(ctx context.Context, objectName string) error {
	exists, err := s.conn.ObjectExists(ctx, objectName)
	if err != nil {
		return err
	}
	if !exists {
		return ErrObjectNotFound
	}

	return s.conn.DeleteObject(ctx, objectName)
}

func (s *artifactsStorage) Location(objectName string) string {
	return s.conn.ObjectLocation(objectName)
}

var (
	ErrObjectAlreadyExists = errors.New("artifact object already exists")
	ErrObjectNotFound      = errors.New("artifact object not found")
)
