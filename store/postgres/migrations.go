package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"todod"
)

// quoteIdentifier safely quotes a PostgreSQL identifier
func quoteIdentifier(name string) string {
	return `"` + name + `"`
}

// Migrate creates the items table if it does not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool, tables todod.Tables) error {
	if err := tables.Validate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE
		)`, quoteIdentifier(tables.Items))

	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("migrate %s: %w", tables.Items, err)
	}

	return nil
}

// DropTables removes the items table. Used by tests.
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables todod.Tables) error {
	if err := tables.Validate(); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}

	query := fmt.Sprintf(`DROP TABLE IF EXISTS %s`, quoteIdentifier(tables.Items))
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("drop %s: %w", tables.Items, err)
	}

	return nil
}
