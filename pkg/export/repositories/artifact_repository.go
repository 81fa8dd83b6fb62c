package exportrepositories

import (
	"context"
	"errors"

	dbconnections "github.com/hsbo-copernicus/rasterproc/pkg/export/repositories/connections"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const artifactsCollection = "artifacts"

type artifactsRepository struct {
	conn dbconnections.CatalogDBConnection
}

var _ ArtifactsRepository = (*artifactsRepository)(nil)

func NewArtifactsRepository(conn dbconnections.CatalogDBConnection) ArtifactsRepository {
	return &artifactsRepository{conn}
}

func (repo *artifactsRepository) CreateArtifactInfo(ctx context.Context, info ArtifactModel) error {
	collection := repo.conn.Collection(artifactsCollection)

	result := collection.FindOne(ctx, bson.M{"artifactID": info.ArtifactID})
	if result.Err() != mongo.ErrNoDocuments {
		return ErrArtifactAlreadyExists
	}

	_, err := collection.InsertOne(ctx, info)
	return err
}

func (repo *artifactsRepository) GetArtifactInfo(ctx context.Context, artifactID string) (ArtifactModel, error) {
	collection := repo.conn.Collection(artifactsCollection)

	var info ArtifactModel
	if err := collection.FindOne(ctx, bson.M{"artifactID": artifactID}).Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return info, ErrArtifactNotFound
		}

		return ArtifactModel{}, err
	}

	return info, nil
}

func (repo *artifactsRepository) DeleteArtifactInfo(ctx context.Context, artifactID string) error {
	collection := repo.conn.Collection(artifactsCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"artifactID": artifactID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrArtifactNotFound
	}

	return nil
}

var (
	ErrArtifactNotFound      = errors.New("artifact not found")
	ErrArtifactAlreadyExists = errors.New("artifact already exists")
)
