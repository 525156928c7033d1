package database

import (
	"context"
	"fmt"
	"time"

	"movie-watchlist/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoIface interface for database abstraction
type MongoIface interface {
	Collection(name string) *mongo.Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// DB wrapper struct
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Collection implements MongoIface
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Ping implements MongoIface
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close implements MongoIface
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// InitDB connects the mongo client and selects the application database
func InitDB(config utils.DatabaseConfig) (MongoIface, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	// Test connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return &DB{
		client: client,
		db:     client.Database(config.Name),
	}, nil
}
