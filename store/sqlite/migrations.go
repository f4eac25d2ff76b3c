package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"todod"
)

// quoteIdentifier safely quotes a SQLite identifier
func quoteIdentifier(name string) string {
	return `"` + name + `"`
}

// Migrate creates the items table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB, tables todod.Tables) error {
	if err := tables.Validate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0
		)`, quoteIdentifier(tables.Items))

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("migrate %s: %w", tables.Items, err)
	}

	return nil
}

// DropTables removes the items table. Used by tests.
func DropTables(ctx context.Context, db *sql.DB, tables todod.Tables) error {
	if err := tables.Validate(); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}

	query := fmt.Sprintf(`DROP TABLE IF EXISTS %s`, quoteIdentifier(tables.Items))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("drop %s: %w", tables.Items, err)
	}

	return nil
}
