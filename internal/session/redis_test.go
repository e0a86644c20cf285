package session

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// startRedis spins up a throwaway redis container and returns a connected
// client.
func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisStoreRoundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	client := startRedis(t)
	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	_, err = store.Get(ctx, "bogus")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Destroy(ctx, token))
	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	client := startRedis(t)
	store := NewRedisStore(client, time.Second)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := store.Get(ctx, token)
		return err == ErrNotFound
	}, 5*time.Second, 100*time.Millisecond)
}
