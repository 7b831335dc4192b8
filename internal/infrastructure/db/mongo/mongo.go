package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fastlegal/case-service/internal/infrastructure/config"
)

// defaultTimeout bounds every call the repositories make against the
// database, and the initial dial below. A stuck store call must not hold a
// request goroutine indefinitely.
const defaultTimeout = 10 * time.Second

// Connect dials MongoDB with the settings loaded from the environment,
// confirms the server is reachable with a ping, and returns the client
// together with the selected database handle. Dial and ping share a single
// defaultTimeout budget; the caller owns disconnecting the client.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
