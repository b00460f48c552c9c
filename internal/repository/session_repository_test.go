package repository

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

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

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
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	rdb := newRedisClient(t)
	repo := NewSessionRepository(rdb)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "abc", 42, time.Minute))

	userID, found, err := repo.FindUserID(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(42), userID)

	ttl, err := rdb.TTL(ctx, "session:abc").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, repo.Touch(ctx, "abc", time.Hour))
	ttl, err = rdb.TTL(ctx, "session:abc").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Minute)

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, found, err = repo.FindUserID(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionRepository_Unknown(t *testing.T) {
	repo := NewSessionRepository(newRedisClient(t))

	_, found, err := repo.FindUserID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, found)
}
