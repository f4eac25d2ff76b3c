// Package postgres implements the item repo using PostgreSQL
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"todod"
)

// Repo is a PostgreSQL-backed ItemRepo.
type Repo struct {
	pool      *pgxpool.Pool
	tableName string
}

// NewRepo creates a Repo over a connection pool. The table name is quoted
// so every name the validator accepts (dots, dashes) works in SQL.
func NewRepo(pool *pgxpool.Pool, tables todod.Tables) (*Repo, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("new repo: %w", err)
	}

	return &Repo{pool: pool, tableName: quoteIdentifier(tables.Items)}, nil
}

// Ping verifies database connectivity
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *Repo) List(ctx context.Context) ([]todod.Item, error) {
	query := fmt.Sprintf(`SELECT id, title, completed FROM %s`, r.tableName)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

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
	query := fmt.Sprintf(`SELECT id, title, completed FROM %s WHERE id = $1`, r.tableName)

	var item todod.Item
	err := r.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.Title, &item.Completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return todod.Item{}, todod.ErrNotFound
		}
		return todod.Item{}, fmt.Errorf("get: %w", err)
	}

	return item, nil
}

func (r *Repo) Put(ctx context.Context, item todod.Item) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, title, completed) VALUES ($1, $2, $3)`, r.tableName)

	if _, err := r.pool.Exec(ctx, query, item.ID, item.Title, item.Completed); err != nil {
		return fmt.Errorf("put: %w", err)
	}

	return nil
}

func (r *Repo) SetCompleted(ctx context.Context, id string, completed bool) error {
	query := fmt.Sprintf(`UPDATE %s SET completed = $1 WHERE id = $2`, r.tableName)

	tag, err := r.pool.Exec(ctx, query, completed, id)
	if err != nil {
		return fmt.Errorf("set completed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return todod.ErrNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tableName)

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}
