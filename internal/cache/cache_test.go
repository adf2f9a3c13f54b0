package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-service/internal/model"
)

func newTestCache(t *testing.T) (*RedisDropdowns, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisDropdowns(rdb, time.Minute, zerolog.Nop()), mr
}

func TestRememberLoadsOnce(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	calls := 0
	load := func() ([]model.DropDownRow, error) {
		calls++
		return []model.DropDownRow{{ID: "1", Value: "Interbank"}}, nil
	}

	first, err := c.Remember(ctx, "banks", load)
	require.NoError(t, err)
	second, err := c.Remember(ctx, "banks", load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists(keyPrefix+"banks"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(keyPrefix+"banks"))
}

func TestRememberPropagatesLoadError(t *testing.T) {
	c, mr := newTestCache(t)
	boom := errors.New("db down")

	_, err := c.Remember(context.Background(), "routes:abc", func() ([]model.DropDownRow, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists(keyPrefix+"routes:abc"))
}

func TestInvalidateDropsScopedKeys(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	rows := func() ([]model.DropDownRow, error) { return []model.DropDownRow{}, nil }

	for _, key := range []string{"drivers", Key("drivers", "t1"), Key("drivers", "t2"), "units"} {
		_, err := c.Remember(ctx, key, rows)
		require.NoError(t, err)
	}

	c.Invalidate(ctx, "drivers")

	assert.False(t, mr.Exists(keyPrefix+"drivers"))
	assert.False(t, mr.Exists(keyPrefix+"drivers:t1"))
	assert.False(t, mr.Exists(keyPrefix+"drivers:t2"))
	assert.True(t, mr.Exists(keyPrefix+"units"))
}

func TestRememberSurvivesRedisOutage(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	rows, err := c.Remember(context.Background(), "services", func() ([]model.DropDownRow, error) {
		return []model.DropDownRow{{ID: "s", Value: "Carga"}}, nil
	})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestNoopAlwaysLoads(t *testing.T) {
	calls := 0
	load := func() ([]model.DropDownRow, error) { calls++; return nil, nil }
	_, _ = Noop{}.Remember(context.Background(), "x", load)
	_, _ = Noop{}.Remember(context.Background(), "x", load)
	Noop{}.Invalidate(context.Background(), "x")
	assert.Equal(t, 2, calls)
}
