package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoOptions describes the search log store connection
type MongoOptions struct {
	URI            string
	Username       string
	Password       string
	AppName        string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// DefaultMongoOptions returns settings for the low-volume search log writer
func DefaultMongoOptions(uri, username, password string) MongoOptions {
	return MongoOptions{
		URI:            uri,
		Username:       username,
		Password:       password,
		AppName:        "itinerary-service",
		MaxPoolSize:    10,
		ConnectTimeout: 10 * time.Second,
	}
}

// mongoClientOptions builds driver options; credentials are only set when both are given
func mongoClientOptions(opts MongoOptions) *options.ClientOptions {
	clientOptions := options.Client().
		ApplyURI(opts.URI).
		SetAppName(opts.AppName).
		SetMaxPoolSize(opts.MaxPoolSize).
		SetConnectTimeout(opts.ConnectTimeout)

	if opts.Username != "" && opts.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: opts.Username,
			Password: opts.Password,
		})
	}
	return clientOptions
}

// NewMongoClient connects to MongoDB and checks the primary is reachable
func NewMongoClient(ctx context.Context, opts MongoOptions) (*mongo.Client, error) {
	clientOptions := mongoClientOptions(opts)
	if err := clientOptions.Validate(); err != nil {
		return nil, fmt.Errorf("mongo options: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}
