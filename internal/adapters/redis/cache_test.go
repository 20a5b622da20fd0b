package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rediscache "github.com/aretw0/verdict/internal/adapters/redis"
	backend "github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, opts ...rediscache.Option) (*rediscache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return rediscache.NewFromClient(client, opts...), mr
}

func TestCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, hit, err := cache.Get(ctx, "digest-1")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, "digest-1", "function decide() {}"))

	payload, hit, err := cache.Get(ctx, "digest-1")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "function decide() {}", payload)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache, mr := newTestCache(t, rediscache.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "digest-2", "graph TD"))
	mr.FastForward(2 * time.Minute)

	_, hit, err := cache.Get(ctx, "digest-2")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_Prefix(t *testing.T) {
	cache, mr := newTestCache(t, rediscache.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "digest-3", "payload"))
	assert.True(t, mr.Exists("custom:digest-3"))
}
