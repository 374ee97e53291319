package ban

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGuard_LocksOutAfterMaxStrikes(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	g := NewGuard(NewInMemoryStrikeStore(), 3, time.Minute, zap.New(core))

	for range 2 {
		g.Fail(ctx, "jdoe", "/auth/login")
	}
	assert.False(t, g.Banned(ctx, "jdoe"))

	g.Fail(ctx, "jdoe", "/auth/login")
	assert.True(t, g.Banned(ctx, "jdoe"))
	assert.False(t, g.Banned(ctx, "asmith"))
	assert.Equal(t, 1, logs.FilterMessage("login locked out").Len())

	entries, err := g.BanLog(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "jdoe", entries[0].Target)
	assert.Equal(t, 3, entries[0].Strikes)

	g.Succeed(ctx, "jdoe")
	assert.False(t, g.Banned(ctx, "jdoe"))
}

func TestGuard_Disabled(t *testing.T) {
	ctx := context.Background()
	g := NewGuard(NewInMemoryStrikeStore(), 0, time.Minute, nil)

	for range 10 {
		g.Fail(ctx, "jdoe", "/auth/login")
	}
	assert.False(t, g.Banned(ctx, "jdoe"))
}

func TestInMemoryStrikeStore_WindowExpires(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStrikeStore()

	n, err := s.AddStrike(ctx, "jdoe", -time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.Strikes(ctx, "jdoe")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, _ = s.AddStrike(ctx, "jdoe", time.Minute)
	assert.Equal(t, 1, n)
}
