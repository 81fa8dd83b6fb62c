package dbconnections

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestingMongoURIEnv names the environment variable holding the connection
// string of the integration testing mongo instance. Tests using the testing
// connection skip themselves when it is unset.
const TestingMongoURIEnv = "RASTERPROC_TEST_MONGO_CONNECTION_STRING"

type CatalogDBTestingConnection struct {
	testDBName string
	client     *mongo.Client
}

var _ CatalogDBConnection = (*CatalogDBTestingConnection)(nil)

func NewCatalogDBTestingConnection(t *testing.T) *CatalogDBTestingConnection {
	connectionString := os.Getenv(TestingMongoURIEnv)
	if connectionString == "" {
		t.Skipf("%s not set, skipping catalog DB integration test", TestingMongoURIEnv)
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(connectionString))
	if err != nil {
		panic("Cannot connect to mongodb: " + err.Error())
	}

	testDBName := generateTestDBName(client)
	conn := &CatalogDBTestingConnection{testDBName, client}

	t.Cleanup(conn.Cleanup)
	return conn
}

func (c *CatalogDBTestingConnection) Collection(name string) *mongo.Collection {
	return c.client.Database(c.testDBName).Collection(name)
}

func (c *CatalogDBTestingConnection) Cleanup() {
	ctx := context.Background()
	err := c.client.Database(c.testDBName).Drop(ctx)
	if err != nil {
		panic("Cannot cleanup testing database '" + c.testDBName + "': " + err.Error())
	}
}

func generateTestDBName(client *mongo.Client) string {
	for i := 0; i < 10; i++ {
		id := uuid.New().String()
		if checkDatabaseExists(client, id) {
			continue
		}

		client.Database(id)
		return id
	}

	panic("Cannot generate unique test DB name")
}

func checkDatabaseExists(client *mongo.Client, databaseName string) bool {
	databases, err := client.ListDatabaseNames(context.Background(), bson.M{})
	if err != nil {
		panic("Cannot fetch database names list: " + err.Error())
	}

	for _, name := range databases {
		if name == databaseName {
			return true
		}
	}

	return false
}
