package db

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"storefront/pkg/config"
)

func Open(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

func migrationConnString(cfg config.Config) string {
	if strings.TrimSpace(cfg.Mongo.MigrateURI) != "" {
		return cfg.Mongo.MigrateURI
	}
	// Fall back to the runtime URI with the database name appended; the
	// migrate mongodb driver requires the database in the URI path.
	uri := strings.TrimSuffix(cfg.Mongo.URI, "/")
	if i := strings.Index(uri, "?"); i >= 0 {
		return uri[:i] + "/" + cfg.Mongo.Database + uri[i:]
	}
	return uri + "/" + cfg.Mongo.Database
}
