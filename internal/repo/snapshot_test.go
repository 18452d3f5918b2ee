package repo_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wayfarer/internal/domain"
	"github.com/pkordes/wayfarer/internal/repo"
	"github.com/pkordes/wayfarer/testutil"
)

// assertSnapshotContract exercises the behaviour every SnapshotRepo backend
// must share: missing keys report domain.ErrNotFound, saves round-trip, and a
// second save replaces the first.
func assertSnapshotContract(t *testing.T, r repo.SnapshotRepo) {
	t.Helper()
	ctx := context.Background()

	_, err := r.Load(ctx, "trip-storage")
	require.ErrorIs(t, err, domain.ErrNotFound, "unsaved key should be not found")

	first := []byte(`{"version":1,"data":{"trips":[]}}`)
	require.NoError(t, r.Save(ctx, "trip-storage", first))

	got, err := r.Load(ctx, "trip-storage")
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(got))

	second := []byte(`{"version":1,"data":{"trips":[{"id":"1"}]}}`)
	require.NoError(t, r.Save(ctx, "trip-storage", second))

	got, err = r.Load(ctx, "trip-storage")
	require.NoError(t, err)
	assert.JSONEq(t, string(second), string(got), "second save should replace the first")

	_, err = r.Load(ctx, "gear-storage")
	assert.ErrorIs(t, err, domain.ErrNotFound, "keys are independent")
}

func TestMemorySnapshotRepo(t *testing.T) {
	assertSnapshotContract(t, repo.NewMemorySnapshotRepo())
}

func TestMemorySnapshotRepo_CopiesBlobs(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	ctx := context.Background()

	blob := []byte(`{"a":1}`)
	require.NoError(t, r.Save(ctx, "k", blob))
	blob[2] = 'b' // mutate caller's slice after saving

	got, err := r.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestFileSnapshotRepo(t *testing.T) {
	r, err := repo.NewFileSnapshotRepo(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	assertSnapshotContract(t, r)
}

func TestFileSnapshotRepo_RejectsPathKeys(t *testing.T) {
	r, err := repo.NewFileSnapshotRepo(t.TempDir())
	require.NoError(t, err)

	err = r.Save(context.Background(), "../escape", []byte(`{}`))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSQLiteSnapshotRepo(t *testing.T) {
	db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "wayfarer.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r, err := repo.NewSQLiteSnapshotRepo(context.Background(), db)
	require.NoError(t, err)

	assertSnapshotContract(t, r)
}

func TestSQLiteSnapshotRepo_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wayfarer.db")
	ctx := context.Background()

	db, err := repo.OpenSQLite(path)
	require.NoError(t, err)
	r, err := repo.NewSQLiteSnapshotRepo(ctx, db)
	require.NoError(t, err)
	require.NoError(t, r.Save(ctx, "profile-storage", []byte(`{"name":"x"}`)))
	require.NoError(t, db.Close())

	db, err = repo.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	r, err = repo.NewSQLiteSnapshotRepo(ctx, db)
	require.NoError(t, err)

	got, err := r.Load(ctx, "profile-storage")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x"}`, string(got))
}

// newTestPostgresRepo opens a transaction against the test database and
// returns a SnapshotRepo backed by it. The transaction is rolled back when the
// test finishes, giving free per-test isolation.
func newTestPostgresRepo(t *testing.T) repo.SnapshotRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test, so no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewPostgresSnapshotRepo(tx)
}

func TestPostgresSnapshotRepo(t *testing.T) {
	assertSnapshotContract(t, newTestPostgresRepo(t))
}

func TestRedisSnapshotRepo(t *testing.T) {
	prefix := "wayfarer-test-" + uuid.NewString()
	client := testutil.NewRedis(t, prefix)

	assertSnapshotContract(t, repo.NewRedisSnapshotRepo(client, prefix))
}
