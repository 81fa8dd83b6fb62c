package dbconnections

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const catalogDatabaseName = "rasterproc"

type CatalogDBConfig struct {
	ConnectionString string
}

type CatalogDBProductionConnection struct {
	config CatalogDBConfig
	client *mongo.Client
}

var _ CatalogDBConnection = (*CatalogDBProductionConnection)(nil)

func NewCatalogDBProductionConnection(ctx context.Context, config CatalogDBConfig) (CatalogDBConnection, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(config.ConnectionString))
	if err != nil {
		return nil, err
	}

	err = client.Connect(ctx)
	if err != nil {
		return nil, err
	}

	return &CatalogDBProductionConnection{
		config: config,
		client: client,
	}, nil
}

func (c *CatalogDBProductionConnection) Collection(collectionName string) *mongo.Collection {
	return c.client.Database(catalogDatabaseName).Collection(collectionName)
}
