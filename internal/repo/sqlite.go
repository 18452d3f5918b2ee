package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver

	"github.com/pkordes/wayfarer/internal/domain"
)

// OpenSQLite opens (creating if needed) the SQLite database file at path.
// SQLite allows one writer at a time, so the pool is limited to a single
// connection. Callers are responsible for closing the returned *sql.DB.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// sqliteSnapshotRepo is the SQLite implementation of SnapshotRepo.
type sqliteSnapshotRepo struct {
	db *sql.DB
}

// NewSQLiteSnapshotRepo creates the snapshots table if it does not exist and
// returns a SnapshotRepo backed by db.
func NewSQLiteSnapshotRepo(ctx context.Context, db *sql.DB) (SnapshotRepo, error) {
	const ddl = `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("repo.NewSQLiteSnapshotRepo: create table: %w", err)
	}
	return &sqliteSnapshotRepo{db: db}, nil
}

// Load reads the snapshot stored under key.
func (r *sqliteSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM snapshots WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, q, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("repo.SQLiteSnapshotRepo.Load: %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.SQLiteSnapshotRepo.Load: %w", err)
	}
	return []byte(value), nil
}

// Save upserts the snapshot for key.
func (r *sqliteSnapshotRepo) Save(ctx context.Context, key string, blob []byte) error {
	const q = `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value      = excluded.value,
		    updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, q, key, string(blob)); err != nil {
		return fmt.Errorf("repo.SQLiteSnapshotRepo.Save: %w", err)
	}
	return nil
}
