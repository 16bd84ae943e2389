package ticket

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	store := NewRedisStore(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { store.Close() })

	return store, mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("ping", func(t *testing.T) {
		store, _ := setupRedisStore(t)
		assert.NoError(t, store.Ping(ctx))
	})

	t.Run("get of missing key is not an error", func(t *testing.T) {
		store, _ := setupRedisStore(t)

		val, ok, err := store.Get(ctx, "tickets")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, val)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		store, _ := setupRedisStore(t)

		require.NoError(t, store.Set(ctx, "tickets", `[{"id":1}]`))
		val, ok, err := store.Get(ctx, "tickets")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":1}]`, val)
	})

	t.Run("failure propagates to the caller", func(t *testing.T) {
		store, mr := setupRedisStore(t)
		mr.Close()

		_, _, err := store.Get(ctx, "tickets")
		assert.Error(t, err)

		err = store.Set(ctx, "tickets", "[]")
		assert.Error(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	val, ok, err := store.Get(ctx, "tickets")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)

	require.NoError(t, store.Set(ctx, "tickets", "[]"))
	val, ok, err = store.Get(ctx, "tickets")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", val)

	// Overwrite replaces the whole value.
	require.NoError(t, store.Set(ctx, "tickets", `[{"id":1}]`))
	val, _, err = store.Get(ctx, "tickets")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, val)
}
