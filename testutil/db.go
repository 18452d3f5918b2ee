// Package testutil holds helpers shared by the storage integration tests.
// Every helper skips the calling test when its backend is not configured,
// so `go test ./...` passes on a machine with no Postgres or Redis.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/pkordes/wayfarer/migrations"
)

// Environment variables naming the integration backends.
const (
	DatabaseURLEnv = "TEST_DATABASE_URL"
	RedisAddrEnv   = "TEST_REDIS_ADDR"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

// NewPool returns a pool on TEST_DATABASE_URL with the snapshot schema
// applied. Migrations run once per test binary. The pool is closed when the
// test finishes.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := lookup(t, DatabaseURLEnv)

	migrateOnce.Do(func() { migrateErr = migrateUp(dsn) })
	if migrateErr != nil {
		t.Fatalf("testutil.NewPool: %v", migrateErr)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB returns a database/sql handle on TEST_DATABASE_URL, for driving
// goose directly. No migrations are applied.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := openSQL(lookup(t, DatabaseURLEnv))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func openSQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

func migrateUp(dsn string) error {
	db, err := openSQL(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// lookup returns the value of key, skipping the test when it is unset.
func lookup(t *testing.T, key string) string {
	t.Helper()
	v := os.Getenv(key)
	if v == "" {
		t.Skipf("%s not set; skipping integration test", key)
	}
	return v
}
