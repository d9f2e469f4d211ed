package persistence

import (
	"context"
	"fmt"

	"dispatch-board-service/internal/domain/repository"
	"dispatch-board-service/internal/infrastructure/config"
	seedRepo "dispatch-board-service/internal/interface/repository"
)

// Seed source names accepted by SEED_SOURCE
const (
	SeedBuiltin  = "builtin"
	SeedJSON     = "json"
	SeedSQLite   = "sqlite"
	SeedPostgres = "postgres"
	SeedMongo    = "mongo"
)

// OpenSeedRepository builds the seed repository named by source. The returned
// close func releases any connection and is never nil.
func OpenSeedRepository(ctx context.Context, source string, cfg *config.Config) (repository.SeedRepository, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch source {
	case "", SeedBuiltin:
		return seedRepo.NewBuiltinSeedRepository(), noop, nil

	case SeedJSON:
		if cfg.SeedPath == "" {
			return nil, noop, fmt.Errorf("SEED_PATH is required for the json seed source")
		}
		return seedRepo.NewJSONSeedRepository(cfg.SeedPath), noop, nil

	case SeedSQLite, SeedPostgres:
		dsn := cfg.SQLitePath
		if source == SeedPostgres {
			dsn = cfg.PostgresURI
		}
		db, err := OpenGorm(source, dsn)
		if err != nil {
			return nil, noop, err
		}
		return seedRepo.NewGormSeedRepository(db), func(context.Context) error { return CloseGorm(db) }, nil

	case SeedMongo:
		db, err := OpenMongoDatabase(ctx, MongoSettings{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDB,
			Username: cfg.MongoUser,
			Password: cfg.MongoPassword,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		return seedRepo.NewMongoSeedRepository(db), db.Client().Disconnect, nil

	default:
		return nil, noop, fmt.Errorf("unknown seed source %q", source)
	}
}
