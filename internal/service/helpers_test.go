package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/wayfarer/internal/dates"
	"github.com/pkordes/wayfarer/internal/repo"
)

// mockSnapshotRepo is a hand-written test double for repo.SnapshotRepo.
// Each method is a function field; set only the ones your test needs.
type mockSnapshotRepo struct {
	load func(ctx context.Context, key string) ([]byte, error)
	save func(ctx context.Context, key string, blob []byte) error
}

func (m *mockSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	return m.load(ctx, key)
}
func (m *mockSnapshotRepo) Save(ctx context.Context, key string, blob []byte) error {
	return m.save(ctx, key, blob)
}

// compile-time check: mockSnapshotRepo must satisfy repo.SnapshotRepo.
var _ repo.SnapshotRepo = (*mockSnapshotRepo)(nil)

var errDiskFull = errors.New("disk full")

// flakyRepo wraps a memory repo whose saves can be switched to fail.
type flakyRepo struct {
	*repo.MemorySnapshotRepo
	fail bool
}

func (f *flakyRepo) Save(ctx context.Context, key string, blob []byte) error {
	if f.fail {
		return errDiskFull
	}
	return f.MemorySnapshotRepo.Save(ctx, key, blob)
}

func newFlakyRepo() *flakyRepo {
	return &flakyRepo{MemorySnapshotRepo: repo.NewMemorySnapshotRepo()}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dates.ParseDate(s)
	require.NoError(t, err)
	return d
}

func ptr[T any](v T) *T { return &v }

// storedEnvelope decodes the snapshot saved under key.
func storedEnvelope(t *testing.T, r repo.SnapshotRepo, key string) (int, map[string]json.RawMessage) {
	t.Helper()
	blob, err := r.Load(context.Background(), key)
	require.NoError(t, err)

	var env struct {
		Version int                        `json:"version"`
		Data    map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(blob, &env))
	return env.Version, env.Data
}
