// Package store selects and wires an item store backend from
// configuration.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"todod"
	"todod/store/dynamo"
	"todod/store/memory"
	"todod/store/postgres"
	"todod/store/sqlite"

	_ "modernc.org/sqlite" // SQLite driver
)

// Config holds the configuration for connecting to an item store backend.
type Config struct {
	// Type specifies the backend: "memory", "sqlite", "postgres" or "dynamo"
	Type string `mapstructure:"type" validate:"required,oneof=memory sqlite postgres dynamo"`
	// DSN is the data source name (sqlite file path or postgres connection string)
	DSN string `mapstructure:"dsn"`
	// Table is the name of the items table
	Table string `mapstructure:"table"`
	// Region is the AWS region for the dynamo backend
	Region string `mapstructure:"region"`
	// Endpoint overrides the dynamo service endpoint for local development
	Endpoint string `mapstructure:"endpoint"`
}

// Connect establishes a connection to the configured backend, runs
// migrations where the backend owns its schema, and returns an ItemRepo.
// The returned cleanup function should be called to release the
// connection. The dynamo table is provisioned out of band and is not
// migrated here.
func Connect(ctx context.Context, cfg Config) (todod.ItemRepo, func(), error) {
	tables := todod.Tables{Items: cfg.Table}

	switch cfg.Type {
	case "memory":
		return memory.New(), func() {}, nil
	case "sqlite":
		return connectSQLite(ctx, cfg.DSN, tables)
	case "postgres":
		return connectPostgres(ctx, cfg.DSN, tables)
	case "dynamo":
		return connectDynamo(ctx, cfg, tables)
	default:
		return nil, nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}
}

func connectSQLite(ctx context.Context, dsn string, tables todod.Tables) (todod.ItemRepo, func(), error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err = sqlite.Migrate(ctx, db, tables); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	repo, err := sqlite.NewRepo(db, tables)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("sqlite repo: %w", err)
	}

	return repo, func() { _ = db.Close() }, nil
}

func connectPostgres(ctx context.Context, dsn string, tables todod.Tables) (todod.ItemRepo, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err = postgres.Migrate(ctx, pool, tables); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrate postgres: %w", err)
	}

	repo, err := postgres.NewRepo(pool, tables)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("postgres repo: %w", err)
	}

	return repo, pool.Close, nil
}

func connectDynamo(ctx context.Context, cfg Config, tables todod.Tables) (todod.ItemRepo, func(), error) {
	client, err := dynamo.NewClient(ctx, cfg.Region, cfg.Endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("dynamo client: %w", err)
	}

	repo, err := dynamo.NewRepo(client, tables)
	if err != nil {
		return nil, nil, fmt.Errorf("dynamo repo: %w", err)
	}

	return repo, func() {}, nil
}
