package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

// MongoSettings describes where the seed collection lives
type MongoSettings struct {
	URI      string
	Database string
	Username string
	Password string
}

// OpenMongoDatabase connects, pings a primary and returns the named database.
// Callers disconnect through db.Client().
func OpenMongoDatabase(ctx context.Context, s MongoSettings) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(s.URI).
		SetAppName("dispatch-board-service").
		SetConnectTimeout(mongoConnectTimeout)
	if s.Username != "" && s.Password != "" {
		opts.SetAuth(options.Credential{Username: s.Username, Password: s.Password})
	}

	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client.Database(s.Database), nil
}
