package exportrepositories_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	exportrepositories "github.com/hsbo-copernicus/rasterproc/pkg/export/repositories"
	dbconnections "github.com/hsbo-copernicus/rasterproc/pkg/export/repositories/connections"
)

func TestArtifactsStorage_SaveStoresObject(t *testing.T) {
	conn := dbconnections.NewMinioBlockStorageTestingConnection(t)
	storage := exportrepositories.NewArtifactsStorage(conn)
	data := []byte{0x1, 0x2, 0x3}

	err := storage.Save(context.Background(), "results/test.tif", "image/tiff", int64(len(data)), bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected save to succeed, got: %v", err)
	}

	exists, err := conn.ObjectExists(context.Background(), "results/test.tif")
	if err != nil {
		t.Fatalf("expected exists check to succeed, got: %v", err)
	}

	if !exists {
		t.Error("expected object to exist after save")
	}
}

func TestArtifactsStorage_SaveFailsWhenObjectAlreadyExists(t *testing.T) {
	conn := dbconnections.NewMinioBlockStorageTestingConnection(t)
	storage := exportrepositories.NewArtifactsStorage(conn)
	data := []byte{0x1, 0x2, 0x3}

	if err := storage.Save(context.Background(), "results/test.tif", "image/tiff", int64(len(data)), bytes.NewReader(data)); err != nil {
		t.Fatalf("expected save to succeed, got: %v", err)
	}

	err := storage.Save(context.Background(), "results/test.tif", "image/tiff", int64(len(data)), bytes.NewReader(data))
	if err != exportrepositories.ErrObjectAlreadyExists {
		t.Errorf("expected ErrObjectAlreadyExists, got: %v", err)
	}
}

func TestArtifactsStorage_DeleteFailsWhenObjectUnknown(t *testing.T) {
	conn := dbconnections.NewMinioBlockStorageTestingConnection(t)
	storage := exportrepositories.NewArtifactsStorage(conn)

	err := storage.Delete(context.Background(), "results/unknown.tif")
	if err != exportrepositories.ErrObjectNotFound {
		t.Errorf("expected ErrObjectNotFound, got: %v", err)
	}
}

func TestArtifactsStorage_LocationPointsIntoBucket(t *testing.T) {
	conn := dbconnections.NewMinioBlockStorageTestingConnection(t)
	storage := exportrepositories.NewArtifactsStorage(conn)

	location := storage.Location("results/test.tif")
	if !strings.HasPrefix(location, "s3://") || !strings.HasSuffix(location, "/results/test.tif") {
		t.Errorf("expected bucket qualified location, got %q", location)
	}
}
