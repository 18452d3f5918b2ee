package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkordes/wayfarer/internal/domain"
)

// fileSnapshotRepo stores each snapshot as <dir>/<key>.json.
type fileSnapshotRepo struct {
	dir string
}

// NewFileSnapshotRepo returns a SnapshotRepo that keeps one JSON file per key
// under dir, creating dir if it does not exist.
func NewFileSnapshotRepo(dir string) (SnapshotRepo, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("repo.NewFileSnapshotRepo: %w", err)
	}
	return &fileSnapshotRepo{dir: dir}, nil
}

func (r *fileSnapshotRepo) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: invalid snapshot key %q", domain.ErrValidation, key)
	}
	return filepath.Join(r.dir, key+".json"), nil
}

// Load reads <dir>/<key>.json.
func (r *fileSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := r.path(key)
	if err != nil {
		return nil, fmt.Errorf("repo.FileSnapshotRepo.Load: %w", err)
	}
	blob, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("repo.FileSnapshotRepo.Load: %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.FileSnapshotRepo.Load: %w", err)
	}
	return blob, nil
}

// Save writes the snapshot atomically: write to a temp file, then rename.
func (r *fileSnapshotRepo) Save(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := r.path(key)
	if err != nil {
		return fmt.Errorf("repo.FileSnapshotRepo.Save: %w", err)
	}

	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("repo.FileSnapshotRepo.Save: write temp file: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("repo.FileSnapshotRepo.Save: rename temp file: %w", err)
	}
	return nil
}
