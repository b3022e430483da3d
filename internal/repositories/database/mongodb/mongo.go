package mongodb

import (
	"context"
	"fmt"

	"github.com/SscSPs/lending_ledger_app/internal/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DataStore is the subset of *mongo.Collection the repositories use.
type DataStore interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// CollectionProvider hands out collections by name.
type CollectionProvider interface {
	Collection(name string) DataStore
}

// MongoProvider adapts a database of *mongo.Client to CollectionProvider.
type MongoProvider struct {
	db *mongo.Database
}

// NewMongoProvider creates a provider for the named database.
func NewMongoProvider(client *mongo.Client, database string) *MongoProvider {
	return &MongoProvider{db: client.Database(database)}
}

// Collection returns a DataStore for the given collection name.
func (p *MongoProvider) Collection(name string) DataStore {
	return p.db.Collection(name)
}

// Connect establishes and verifies a connection to MongoDB.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.DebugContext(ctx, "Connecting to MongoDB")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.InfoContext(ctx, "Connected to MongoDB")
	return client, nil
}
