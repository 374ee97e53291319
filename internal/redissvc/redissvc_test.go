package redissvc

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-backend/internal/config"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisService) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, NewRedisService(rdb)
}

func TestRedisService_Revocation(t *testing.T) {
	mr, svc := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, svc.Revoke(ctx, "jti-1", time.Minute))

	revoked, err := svc.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = svc.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = svc.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisService_Strikes(t *testing.T) {
	mr, svc := setupTestRedis(t)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		n, err := svc.AddStrike(ctx, "jdoe", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	n, err := svc.Strikes(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, mr.TTL(strikeKeyPrefix+"jdoe") > 0)

	mr.FastForward(time.Minute + time.Second)
	n, err = svc.Strikes(ctx, "jdoe")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, _ = svc.AddStrike(ctx, "jdoe", time.Minute)
	require.NoError(t, svc.ResetStrikes(ctx, "jdoe"))
	n, _ = svc.Strikes(ctx, "jdoe")
	assert.Zero(t, n)
}

func TestRedisService_StrikeWindowStartsAtFirstFailure(t *testing.T) {
	mr, svc := setupTestRedis(t)
	ctx := context.Background()

	n, err := svc.AddStrike(ctx, "jdoe", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, time.Minute, mr.TTL(strikeKeyPrefix+"jdoe"))

	mr.FastForward(30 * time.Second)
	n, err = svc.AddStrike(ctx, "jdoe", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 30*time.Second, mr.TTL(strikeKeyPrefix+"jdoe"))

	mr.FastForward(31 * time.Second)
	n, err = svc.Strikes(ctx, "jdoe")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisService_BanLog(t *testing.T) {
	_, svc := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, svc.AppendBanLog(ctx, []byte(`{"target":"a"}`)))
	require.NoError(t, svc.AppendBanLog(ctx, []byte(`{"target":"b"}`)))

	entries, err := svc.BanLog(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.JSONEq(t, `{"target":"b"}`, string(entries[1]))
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	svc, err := Connect(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	assert.NoError(t, svc.Close())

	mr.Close()
	_, err = Connect(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	assert.Error(t, err)
}
