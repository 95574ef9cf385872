package database

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/salesdash/internal/pkg/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient represents a MongoDB client bound to one database and collection
type MongoClient struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewMongoClient connects to MongoDB and verifies the connection
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	if config.Database == "" || config.Collection == "" {
		return nil, fmt.Errorf("mongo database and collection are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout(config))
	defer cancel()

	client, err := mongo.Connect(ctx, buildClientOptions(config))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoClient{
		client:     client,
		database:   config.Database,
		collection: config.Collection,
	}, nil
}

func buildClientOptions(config models.MongoConfig) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(connectTimeout(config)).
		SetServerSelectionTimeout(connectTimeout(config)).
		SetReadPreference(readpref.PrimaryPreferred())

	if config.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(config.MaxPoolSize)
	}
	return opts
}

func connectTimeout(config models.MongoConfig) time.Duration {
	if config.ConnectTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(config.ConnectTimeout) * time.Second
}

// Collection returns the configured transactions collection
func (m *MongoClient) Collection() *mongo.Collection {
	return m.client.Database(m.database).Collection(m.collection)
}

// Ping checks that the primary is reachable
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
