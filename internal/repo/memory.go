package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkordes/wayfarer/internal/domain"
)

// MemorySnapshotRepo keeps snapshots in a process-local map. Nothing survives
// a restart; it backs tests and the "memory" storage driver.
type MemorySnapshotRepo struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemorySnapshotRepo returns an empty MemorySnapshotRepo.
func NewMemorySnapshotRepo() *MemorySnapshotRepo {
	return &MemorySnapshotRepo{blobs: make(map[string][]byte)}
}

// Load returns a copy of the blob stored under key.
func (r *MemorySnapshotRepo) Load(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	blob, ok := r.blobs[key]
	if !ok {
		return nil, fmt.Errorf("repo.MemorySnapshotRepo.Load: %s: %w", key, domain.ErrNotFound)
	}
	return append([]byte(nil), blob...), nil
}

// Save stores a copy of blob under key.
func (r *MemorySnapshotRepo) Save(_ context.Context, key string, blob []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[key] = append([]byte(nil), blob...)
	return nil
}

var _ SnapshotRepo = (*MemorySnapshotRepo)(nil)
