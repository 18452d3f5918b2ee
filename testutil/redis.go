package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns a *redis.Client connected to TEST_REDIS_ADDR.
//
// The test is skipped automatically if TEST_REDIS_ADDR is not set. Every key
// written by the test should live under prefix; they are deleted when the
// test finishes and the client is closed.
func NewRedis(t *testing.T, prefix string) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: lookup(t, RedisAddrEnv)})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedis: ping: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		iter := client.Scan(ctx, 0, prefix+":*", 100).Iterator()
		for iter.Next(ctx) {
			client.Del(ctx, iter.Val())
		}
		client.Close()
	})
	return client
}
