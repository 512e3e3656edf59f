package mongodb

import (
	"context"
	"fmt"

	"nailbook/internal/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	CollProducts = "products"
	CollBookings = "bookings"
	CollPayments = "payments"
	CollAccounts = "accounts"
)

func Connect(cfg config.MongoConfig) (*mongo.Database, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(cfg.Database)

	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			fmt.Printf("Error closing mongodb connection: %v\n", err)
		}
	}

	return db, cleanup, nil
}
