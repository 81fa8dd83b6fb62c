package dbconnections

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Environment variables of the integration testing minio instance. Tests
// using the testing connection skip themselves when the endpoint is unset.
const (
	TestingMinioEndpointEnv  = "RASTERPROC_TEST_MINIO_ENDPOINT"
	TestingMinioAccessKeyEnv = "RASTERPROC_TEST_MINIO_ACCESS_KEY"
	TestingMinioSecretKeyEnv = "RASTERPROC_TEST_MINIO_SECRET_KEY"
)

type MinioBlockStorageTestingConnection struct {
	MinioBlockStorageProductionConnection
}

func NewMinioBlockStorageTestingConnection(t *testing.T) *MinioBlockStorageTestingConnection {
	endpoint := os.Getenv(TestingMinioEndpointEnv)
	if endpoint == "" {
		t.Skipf("%s not set, skipping block storage integration test", TestingMinioEndpointEnv)
	}

	accessKey := os.Getenv(TestingMinioAccessKeyEnv)
	secretKey := os.Getenv(TestingMinioSecretKeyEnv)

	conn, err := NewMinioBlockStorageProductionConnection(context.Background(), MinioBlockStorageProductionConnectionConfig{
		Endpoint:  endpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
		Bucket:    getRandomTestingBucketName(endpoint, accessKey, secretKey),
		Location:  "us-east-1",
		UseSSL:    false,
	})
	if err != nil {
		panic("Error when connecting to minio block storage: " + err.Error())
	}

	return &MinioBlockStorageTestingConnection{conn}
}

func getRandomTestingBucketName(endpoint, accessKey, secretKey string) string {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		panic("Error when generating random name of test bucket: " + err.Error())
	}

	for i := 0; i < 10; i++ {
		id := uuid.New().String()
		bucketName := id + "-testing-bucket"

		exists, err := minioClient.BucketExists(context.Background(), bucketName)
		if err != nil {
			panic("Error when checking if bucket name exists: " + err.Error())
		}
		if !exists {
			return bucketName
		}
	}

	panic("Could not generate random bucket name")
}
