package bootstrap

import (
	"context"

	"nailbook/internal/infra/mongodb"
	"nailbook/internal/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var MongoModule = fx.Module("mongo",
	fx.Provide(
		NewMongo,
		func(cfg config.Config) config.MongoConfig { return cfg.Mongo },
	),
)

func NewMongo(lc fx.Lifecycle, cfg config.Config) (*mongo.Database, error) {
	db, cleanup, err := mongodb.Connect(cfg.Mongo)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return mongodb.EnsureIndexes(ctx, db)
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return db, nil
}
