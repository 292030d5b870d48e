package redis

import (
	"context"
	"testing"
	"time"

	"envybase/internal/domain/service"
	"envybase/internal/infra/auth/oauth"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*StateStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStateStore(client), server
}

func TestStateStore_ConsumeOnce(t *testing.T) {
	store, server := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", "github", time.Minute))
	assert.True(t, server.Exists("oauth:state:abc"))
	assert.Equal(t, time.Minute, server.TTL("oauth:state:abc"))

	provider, err := store.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "github", provider)
	assert.False(t, server.Exists("oauth:state:abc"))

	_, err = store.Consume(ctx, "abc")
	assert.ErrorIs(t, err, service.ErrStateNotFound)
}

func TestStateStore_Expired(t *testing.T) {
	store, server := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", "google", time.Minute))
	server.FastForward(2 * time.Minute)

	_, err := store.Consume(ctx, "abc")
	assert.ErrorIs(t, err, service.ErrStateNotFound)
}

func TestStateStore_ConnectionFailure(t *testing.T) {
	store, server := newTestStore(t)
	server.Close()

	err := store.Save(context.Background(), "abc", "google", time.Minute)
	assert.Error(t, err)

	_, err = store.Consume(context.Background(), "abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrStateNotFound)
}

func TestNewStateStore_FallsBackToMemory(t *testing.T) {
	assert.IsType(t, &oauth.MemoryStateStore{}, NewStateStore(nil))

	client := goredis.NewClient(&goredis.Options{Addr: "localhost:0"})
	defer client.Close()
	assert.IsType(t, &StateStore{}, NewStateStore(client))
}
