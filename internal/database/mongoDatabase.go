package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDatabase struct {
	db *mongo.Database
}

// Connect establishes the mongo connection and verifies it with a ping.
// Callers treat a returned error as "configured but not initialized" and
// keep running without the capability.
func Connect(ctx context.Context, url, name string) (Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &mongoDatabase{db: client.Database(name)}, nil
}

func (m *mongoDatabase) Name() string {
	return m.db.Name()
}

func (m *mongoDatabase) ListCollectionNames(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return m.db.ListCollectionNames(ctx, bson.D{})
}
