package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"todod"
	"todod/store/postgres"
)

var (
	testPool     *pgxpool.Pool
	testPoolOnce sync.Once
	tableSeq     atomic.Int64
)

// getSharedTestDatabase returns a shared database pool for all tests.
// Reusing one container keeps the suite fast; each test gets its own
// table for isolation.
func getSharedTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	testPoolOnce.Do(func() {
		ctx := context.Background()

		pgContainer, err := pgcontainer.Run(ctx,
			"postgres:18-alpine",
			pgcontainer.WithDatabase("testdb"),
			pgcontainer.WithUsername("testuser"),
			pgcontainer.WithPassword("testpass"),
			pgcontainer.BasicWaitStrategies(),
		)
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}

		connectionStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			_ = testcontainers.TerminateContainer(pgContainer)
			t.Fatalf("failed to get connection string: %v", err)
		}

		pool, err := pgxpool.New(ctx, connectionStr)
		if err != nil {
			_ = testcontainers.TerminateContainer(pgContainer)
			t.Fatalf("could not connect to database: %v", err)
		}

		testPool = pool
	})

	return testPool
}

// newTestRepo migrates a fresh table and returns a repo over it.
func newTestRepo(t *testing.T) *postgres.Repo {
	t.Helper()
	ctx := context.Background()

	pool := getSharedTestDatabase(t)
	tables := todod.Tables{Items: fmt.Sprintf("todos_test_%d", tableSeq.Add(1))}

	if err := postgres.Migrate(ctx, pool, tables); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		_ = postgres.DropTables(ctx, pool, tables)
	})

	repo, err := postgres.NewRepo(pool, tables)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	return repo
}
