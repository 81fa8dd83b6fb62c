package main

import (
	"context"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hsbo-copernicus/rasterproc/pkg/acquisition"
	"github.com/hsbo-copernicus/rasterproc/pkg/core"
	"github.com/hsbo-copernicus/rasterproc/pkg/export"
	exportrepositories "github.com/hsbo-copernicus/rasterproc/pkg/export/repositories"
	dbconnections "github.com/hsbo-copernicus/rasterproc/pkg/export/repositories/connections"
	"github.com/hsbo-copernicus/rasterproc/pkg/processor"
	snapprocessor "github.com/hsbo-copernicus/rasterproc/pkg/processor/snap"
	"github.com/sirupsen/logrus"
)

func InitializeCatalogDBConfig() dbconnections.CatalogDBConfig {
	config := dbconnections.CatalogDBConfig{
		ConnectionString: os.Getenv("RASTERPROC_MONGO_CONNECTION_STRING"),
	}

	if config.ConnectionString == "" {
		logrus.Panic("RASTERPROC_MONGO_CONNECTION_STRING is required environment variable")
	}

	parsedConnectionString, err := url.Parse(config.ConnectionString)
	if err != nil {
		logrus.Panicf("Error ocurred when parsing RASTERPROC_MONGO_CONNECTION_STRING: %s", err)
	}

	if parsedConnectionString.User == nil {
		logrus.Panic("RASTERPROC_MONGO_CONNECTION_STRING must contain credentials")
	}

	return config
}

func InitializeCatalogDBConnection(ctx context.Context, config dbconnections.CatalogDBConfig) dbconnections.CatalogDBConnection {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	catalogDBConnection, err := dbconnections.NewCatalogDBProductionConnection(ctx, config)
	if err != nil {
		logrus.Panicf("Error ocurred when initializing MongoDB connection: %s", err)
	}

	return catalogDBConnection
}

func InitializeMinioConfig() dbconnections.MinioBlockStorageProductionConnectionConfig {
	config := dbconnections.MinioBlockStorageProductionConnectionConfig{
		Endpoint:  os.Getenv("RASTERPROC_MINIO_ENDPOINT"),
		AccessKey: os.Getenv("RASTERPROC_MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("RASTERPROC_MINIO_SECRET_KEY"),
		Location:  os.Getenv("RASTERPROC_MINIO_LOCATION"),
		Bucket:    os.Getenv("RASTERPROC_MINIO_BUCKET"),
		UseSSL:    os.Getenv("RASTERPROC_MINIO_SSL") == "true",
	}

	if config.Endpoint == "" {
		logrus.Panic("RASTERPROC_MINIO_ENDPOINT is required environment variable")
	}

	if _, err := url.Parse(config.Endpoint); err != nil {
		logrus.Panicf("Error ocurred when parsing RASTERPROC_MINIO_ENDPOINT: %s", err)
	}

	if config.AccessKey == "" {
		logrus.Panic("RASTERPROC_MINIO_ACCESS_KEY is required environment variable")
	}

	if config.SecretKey == "" {
		logrus.Panic("RASTERPROC_MINIO_SECRET_KEY is required environment variable")
	}

	if config.Location == "" {
		config.Location = "us-east-1"
	}

	if config.Bucket == "" {
		config.Bucket = "raster-results"
	}

	return config
}

func InitializeMinioConnection(ctx context.Context, config dbconnections.MinioBlockStorageProductionConnectionConfig) dbconnections.MinioBlockStorageConnection {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	minioBlockStorageConnection, err := dbconnections.NewMinioBlockStorageProductionConnection(ctx, config)
	if err != nil {
		logrus.Panicf("Error ocurred when initializing Minio connection: %s", err)
	}

	return &minioBlockStorageConnection
}

func InitializePortalConfig() acquisition.PortalConfig {
	config := acquisition.PortalConfig{
		PortalURL: os.Getenv("RASTERPROC_PORTAL_URL"),
	}

	if config.PortalURL == "" {
		logrus.Panic("RASTERPROC_PORTAL_URL is required environment variable")
	}

	if _, err := url.Parse(config.PortalURL); err != nil {
		logrus.Panicf("Error ocurred when parsing RASTERPROC_PORTAL_URL: %s", err)
	}

	return config
}

func ProvideAcquirer(config acquisition.PortalConfig) acquisition.Acquirer {
	return acquisition.NewPortalClient(config)
}

func InitializeSnapConfig() snapprocessor.Config {
	config := snapprocessor.Config{
		ServiceURL: os.Getenv("RASTERPROC_SNAP_SERVICE_URL"),
	}

	if config.ServiceURL == "" {
		logrus.Panic("RASTERPROC_SNAP_SERVICE_URL is required environment variable")
	}

	if _, err := url.Parse(config.ServiceURL); err != nil {
		logrus.Panicf("Error ocurred when parsing RASTERPROC_SNAP_SERVICE_URL: %s", err)
	}

	return config
}

func InitializeDefaultProcessors(config snapprocessor.Config) []processor.Processor {
	return core.DefaultProcessors(config)
}

func ProvideCore(acquirer acquisition.Acquirer, exporter export.Exporter, processors []processor.Processor) *core.Core {
	return core.New(acquirer, exporter, processors...)
}

func ProvideExporter(
	artifactsRepository exportrepositories.ArtifactsRepository,
	artifactsStorage exportrepositories.ArtifactsStorage,
) export.Exporter {
	return export.NewExportService(artifactsRepository, artifactsStorage)
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

func InitializeServerConfig() ServerConfig {
	config := ServerConfig{
		Port:           80,
		AllowedOrigins: strings.Split(os.Getenv("RASTERPROC_ALLOWED_ORIGINS"), ","),
	}

	if rawPort := os.Getenv("RASTERPROC_PORT"); rawPort != "" {
		port, err := strconv.Atoi(rawPort)
		if err != nil {
			logrus.Panicf("Error ocurred when parsing RASTERPROC_PORT: %s", err)
		}
		config.Port = port
	}

	if len(config.AllowedOrigins) == 1 && config.AllowedOrigins[0] == "" {
		config.AllowedOrigins = []string{"*"}
	}

	return config
}
