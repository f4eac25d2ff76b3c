// Package sqlite implements the item repo using SQLite
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todod"
)

// Repo is a SQLite-backed ItemRepo.
type Repo struct {
	db        *sql.DB
	tableName string
}

// NewRepo creates a Repo over an open database handle. The table name is
// quoted so every name the validator accepts (dots, dashes) works in SQL.
func NewRepo(db *sql.DB, tables todod.Tables) (*Repo, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("new repo: %w", err)
	}

	return &Repo{db: db, tableName: quoteIdentifier(tables.Items)}, nil
}

func (r *Repo) List(ctx context.Context) ([]todod.Item, error) {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`SELECT id, title, completed FROM %s`, r.tableName)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []todod.Item
	for rows.Next() {
		var item todod.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Completed); err != nil {
			return nil, fmt.Errorf("list: scan: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list: rows: %w", err)
	}

	return items, nil
}

func (r *Repo) Get(ctx context.Context, id string) (todod.Item, error) {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`SELECT id, title, completed FROM %s WHERE id = ?`, r.tableName)

	var item todod.Item
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Title, &item.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return todod.Item{}, todod.ErrNotFound
		}
		return todod.Item{}, fmt.Errorf("get: %w", err)
	}

	return item, nil
}

func (r *Repo) Put(ctx context.Context, item todod.Item) error {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`INSERT INTO %s (id, title, completed) VALUES (?, ?, ?)`, r.tableName)

	if _, err := r.db.ExecContext(ctx, query, item.ID, item.Title, item.Completed); err != nil {
		return fmt.Errorf("put: %w", err)
	}

	return nil
}

func (r *Repo) SetCompleted(ctx context.Context, id string, completed bool) error {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`UPDATE %s SET completed = ? WHERE id = ?`, r.tableName)

	result, err := r.db.ExecContext(ctx, query, completed, id)
	if err != nil {
		return fmt.Errorf("set completed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set completed: rows affected: %w", err)
	}

	if affected == 0 {
		return todod.ErrNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`DELETE FROM %s WHERE id = ?`, r.tableName)

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}
