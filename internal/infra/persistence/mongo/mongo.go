// Package mongo implements the request log and error record sink on MongoDB.
package mongo

import (
	"context"
	"log/slog"

	"envybase/config"
	"envybase/internal/domain/lifecycle"
	"envybase/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	requestLogCollection = "logs"
	errorLogCollection   = "errors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the client for the log sink database. Without a configured URI
// it returns nil and the repositories discard their writes.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		params.Logger.Warn("MongoDB not configured, request logs are discarded")

		return nil, nil
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return EnsureIndexes(ctx, db)
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the indexes the stats and triage queries rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(requestLogCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "service", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create request log indexes")
	}

	_, err = db.Collection(errorLogCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "correlation_id", Value: 1}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create error log index")
	}

	return nil
}
