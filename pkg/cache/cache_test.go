package cache

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/lapla/pkg/logger"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestMemory(max int) (*Memory, *fakeClock) {
	clk := &fakeClock{t: time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)}
	m := NewMemory(max)
	m.now = clk.now
	return m, clk
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	m, clk := newTestMemory(0)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	clk.t = clk.t.Add(time.Minute)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotCached)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_Eviction(t *testing.T) {
	ctx := context.Background()
	m, clk := newTestMemory(2)

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Minute))
	clk.t = clk.t.Add(time.Second)
	require.NoError(t, m.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, m.Set(ctx, "c", []byte("3"), time.Minute))

	assert.Equal(t, 2, m.Len())
	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotCached)
	_, err = m.Get(ctx, "c")
	assert.NoError(t, err)
}

func TestMemory_Purge(t *testing.T) {
	ctx := context.Background()
	m, clk := newTestMemory(0)

	require.NoError(t, m.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, m.Set(ctx, "long", []byte("2"), time.Hour))
	clk.t = clk.t.Add(time.Minute)

	assert.Equal(t, 1, m.Purge())
	assert.Equal(t, 1, m.Len())
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func TestTiered_BackfillsUpperTier(t *testing.T) {
	ctx := context.Background()
	upper := NewMemory(0)
	lower := NewMemory(0)
	require.NoError(t, lower.Set(ctx, "k", []byte("v"), time.Hour))

	c := NewTiered(time.Minute, logger.Nop()).With("memory", upper).With("postgres", lower)

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	got, err = upper.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestTiered_FailingTierIsAMiss(t *testing.T) {
	ctx := context.Background()
	c := NewTiered(time.Minute, logger.Nop()).With("memory", NewMemory(0)).With("postgres", failingStore{})

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotCached)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoize(t *testing.T) {
	ctx := context.Background()
	c := NewTiered(time.Minute, logger.Nop()).With("memory", NewMemory(0))

	calls := 0
	fn := func(context.Context) ([]string, error) {
		calls++
		return []string{"VER", "HAM"}, nil
	}

	for range 3 {
		got, err := Memoize(ctx, c, "drivers", 0, fn)
		require.NoError(t, err)
		assert.Equal(t, []string{"VER", "HAM"}, got)
	}
	assert.Equal(t, 1, calls)
}

func TestMemoize_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	c := NewTiered(time.Minute, logger.Nop()).With("memory", NewMemory(0))

	calls := 0
	fn := func(context.Context) (int, error) {
		calls++
		return 0, errors.New("provider down")
	}

	_, err := Memoize(ctx, c, "k", 0, fn)
	require.Error(t, err)
	_, err = Memoize(ctx, c, "k", 0, fn)
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestMemoize_PlainMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	_, err := Memoize(ctx, m, "k", time.Minute, func(context.Context) (float64, error) { return 88.5, nil })
	require.NoError(t, err)

	got, err := Memoize(ctx, m, "k", time.Minute, func(context.Context) (float64, error) { return 0, errors.New("not called") })
	require.NoError(t, err)
	assert.Equal(t, 88.5, got)
}

func TestMemoize_UnencodableValueIsReturned(t *testing.T) {
	ctx := context.Background()
	c := NewTiered(time.Minute, logger.Nop()).With("memory", NewMemory(0))

	calls := 0
	fn := func(context.Context) (float64, error) {
		calls++
		return math.Inf(1), nil
	}

	for range 2 {
		got, err := Memoize(ctx, c, "k", 0, fn)
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, 1))
	}
	assert.Equal(t, 2, calls)
}

func TestMemoize_NilStore(t *testing.T) {
	got, err := Memoize(context.Background(), nil, "k", time.Minute, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
