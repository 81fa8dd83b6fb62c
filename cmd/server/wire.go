//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/hsbo-copernicus/rasterproc/pkg/core"
	exportrepositories "github.com/hsbo-copernicus/rasterproc/pkg/export/repositories"
)

func InitializeProcessingCore(ctx context.Context) *core.Core {
	wire.Build(
		InitializeMinioConfig,
		InitializeMinioConnection,
		exportrepositories.NewArtifactsStorage,

		InitializeCatalogDBConfig,
		InitializeCatalogDBConnection,
		exportrepositories.NewArtifactsRepository,

		ProvideExporter,

		InitializePortalConfig,
		ProvideAcquirer,

		InitializeSnapConfig,
		InitializeDefaultProcessors,

		ProvideCore,
	)

	return nil
}
