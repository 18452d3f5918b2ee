package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pkordes/wayfarer/internal/domain"
)

// redisSnapshotRepo keeps each snapshot as a plain string value under
// "<prefix>:<key>". Snapshots never expire.
type redisSnapshotRepo struct {
	client redis.Cmdable
	prefix string
}

// NewRedisSnapshotRepo constructs a SnapshotRepo backed by Redis.
// client may be a *redis.Client, a cluster client, or a pipeline in tests.
func NewRedisSnapshotRepo(client redis.Cmdable, prefix string) SnapshotRepo {
	return &redisSnapshotRepo{client: client, prefix: prefix}
}

func (r *redisSnapshotRepo) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

// Load reads the snapshot stored under key.
func (r *redisSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("repo.RedisSnapshotRepo.Load: %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.RedisSnapshotRepo.Load: %w", err)
	}
	return blob, nil
}

// Save writes the snapshot with no TTL.
func (r *redisSnapshotRepo) Save(ctx context.Context, key string, blob []byte) error {
	if err := r.client.Set(ctx, r.key(key), blob, 0).Err(); err != nil {
		return fmt.Errorf("repo.RedisSnapshotRepo.Save: %w", err)
	}
	return nil
}
