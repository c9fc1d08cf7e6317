package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"vidtube/internal/config"
)

var mongoConnect = mongo.Connect

// ClientOptions validates the config and builds driver options from it.
func ClientOptions(c config.MongoConfig) (*options.ClientOptions, error) {
	if c.URI == "" || c.Database == "" {
		return nil, fmt.Errorf("invalid database config: uri and database are required")
	}

	opts := options.Client().ApplyURI(c.URI)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mongodb uri: %w", err)
	}

	// Apply connection pool settings if provided
	if c.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(c.MaxPoolSize))
	}
	if c.MinPoolSize > 0 {
		opts.SetMinPoolSize(uint64(c.MinPoolSize))
	}
	if c.ConnectTimeoutSec > 0 {
		opts.SetConnectTimeout(time.Duration(c.ConnectTimeoutSec) * time.Second)
	}
	return opts, nil
}

// NewMongo connects to MongoDB, verifies the primary is reachable and
// returns the client together with the configured database handle.
func NewMongo(c config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts, err := ClientOptions(c)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout(c))
	defer cancel()

	client, err := mongoConnect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	// Verify connectivity with a short timeout
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(c.Database), nil
}

// Ping is used by the health endpoint.
func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}

func connectTimeout(c config.MongoConfig) time.Duration {
	if c.ConnectTimeoutSec > 0 {
		return time.Duration(c.ConnectTimeoutSec) * time.Second
	}
	return 10 * time.Second
}
