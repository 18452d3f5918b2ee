// Package repo contains all durable storage access for the Wayfarer backend.
// Every domain store persists one JSON snapshot under a fixed key, so the only
// persistence contract is a key-value SnapshotRepo with one implementation per
// backend. No business logic lives here; only I/O and error mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/wayfarer/internal/domain"
)

// SnapshotRepo stores opaque JSON blobs by key.
// The service layer depends on this interface, not on a concrete backend,
// which allows the stores to be unit-tested against the in-memory repo or a mock.
type SnapshotRepo interface {
	// Load returns the blob saved under key.
	// Returns domain.ErrNotFound if nothing has been saved under that key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save writes blob under key, replacing any previous value.
	Save(ctx context.Context, key string, blob []byte) error
}

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgSnapshotRepo is the Postgres implementation of SnapshotRepo.
// It expects the snapshots table created by the embedded goose migrations.
type pgSnapshotRepo struct {
	db db
}

// NewPostgresSnapshotRepo constructs a SnapshotRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresSnapshotRepo(db db) SnapshotRepo {
	return &pgSnapshotRepo{db: db}
}

// Load reads the snapshot stored under key.
func (r *pgSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	const q = `
		SELECT value
		FROM snapshots
		WHERE key = @key`

	var blob []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.SnapshotRepo.Load: %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.SnapshotRepo.Load: %w", err)
	}
	return blob, nil
}

// Save upserts the snapshot for key and refreshes updated_at.
func (r *pgSnapshotRepo) Save(ctx context.Context, key string, blob []byte) error {
	const q = `
		INSERT INTO snapshots (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = now()`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": string(blob)})
	if err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Save: %w", err)
	}
	return nil
}
