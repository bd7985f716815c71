package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/greenloop/reports-service/internal/config"
)

// Connect dials the document store and verifies the connection with a ping.
func Connect(cfg *config.Config, log zerolog.Logger) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Store.URI))
	if err != nil {
		return nil, fmt.Errorf("connect document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	log.Info().Str("database", cfg.Store.Database).Msg("connected to document store")
	return client.Database(cfg.Store.Database), nil
}
