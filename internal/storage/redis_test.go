package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewRedisStore(mr.Addr(), log)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRedisStorePutGet(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Put(ctx, "slot1", []byte(`{"clock":9}`)))

	data, err := store.Get(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, `{"clock":9}`, string(data))
}

func TestRedisStoreGetMissing(t *testing.T) {
	store := newTestRedisStore(t)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStorePutEmptySlot(t *testing.T) {
	store := newTestRedisStore(t)
	assert.Error(t, store.Put(context.Background(), "", []byte("{}")))
}

func TestRedisStoreList(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "beta", []byte("{}")))
	require.NoError(t, store.Put(ctx, "alpha", []byte("{}")))

	slots, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, slots)
}

func TestRedisStoreDelete(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "gone", []byte("{}")))

	require.NoError(t, store.Delete(ctx, "gone"))
	_, err := store.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "gone"), ErrNotFound)
}

func TestRedisStoreOverwrite(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "slot1", []byte("old")))
	require.NoError(t, store.Put(ctx, "slot1", []byte("new")))

	data, err := store.Get(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
