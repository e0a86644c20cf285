package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDestroyIsIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))
	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Hour).(*memoryStore)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	// Move the clock one minute past the TTL.
	store.now = func() time.Time { return time.Now().Add(time.Hour + time.Minute) }

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(ctx, int64(i))
		require.NoError(t, err)
		require.False(t, seen[token])
		seen[token] = true
	}
}
