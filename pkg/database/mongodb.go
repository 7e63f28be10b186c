package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoClient connects to MongoDB and returns the client plus the
// application database handle. When enablePing is true the connection
// is verified before returning.
func NewMongoClient(ctx context.Context, mongoURL, dbName string, enablePing bool) (*mongo.Client, *mongo.Database, error) {
	if mongoURL == "" {
		return nil, nil, fmt.Errorf("mongo URL cannot be empty")
	}
	if dbName == "" {
		return nil, nil, fmt.Errorf("mongo database name cannot be empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if enablePing {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
		}
	}

	log.Println("Successfully connected to MongoDB.")
	return client, client.Database(dbName), nil
}

// CloseMongoClient disconnects the client.
func CloseMongoClient(ctx context.Context, client *mongo.Client) {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting mongo client: %v\n", err)
			return
		}
		log.Println("MongoDB connection closed.")
	}
}
