package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreach/pkg/cache"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewMemory[int]()

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, c.Set(ctx, "forever", 1, 0))
	require.NoError(t, c.Set(ctx, "short", 2, 20*time.Millisecond))

	v, err := c.Get(ctx, "short")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	require.Eventually(t, func() bool {
		_, err := c.Get(ctx, "short")
		return errors.Is(err, cache.ErrNotFound)
	}, time.Second, 5*time.Millisecond)

	v, err = c.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, c.Len())

	require.NoError(t, c.Delete(ctx, "forever"))
	_, err = c.Get(ctx, "forever")
	require.ErrorIs(t, err, cache.ErrNotFound)
}

func TestMemoizer(t *testing.T) {
	t.Parallel()

	t.Run("caches loaded value", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		m := cache.NewMemoizer[string](cache.NewMemory[string](), time.Minute)

		var calls atomic.Int32
		load := func(context.Context) (string, error) {
			calls.Add(1)
			return "value", nil
		}

		for range 3 {
			v, err := m.Get(ctx, "k", load)
			require.NoError(t, err)
			assert.Equal(t, "value", v)
		}
		assert.Equal(t, int32(1), calls.Load())

		require.NoError(t, m.Invalidate(ctx, "k"))
		_, err := m.Get(ctx, "k", load)
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not cache errors", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		m := cache.NewMemoizer[int](cache.NewMemory[int](), time.Minute)
		boom := errors.New("sheet unreadable")

		_, err := m.Get(ctx, "k", func(context.Context) (int, error) { return 0, boom })
		require.ErrorIs(t, err, boom)

		v, err := m.Get(ctx, "k", func(context.Context) (int, error) { return 7, nil })
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("collapses concurrent misses", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		m := cache.NewMemoizer[int](cache.NewMemory[int](), time.Minute)

		var calls atomic.Int32
		release := make(chan struct{})
		load := func(context.Context) (int, error) {
			calls.Add(1)
			<-release
			return 42, nil
		}

		var wg sync.WaitGroup
		results := make([]int, 8)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := m.Get(ctx, "k", load)
				assert.NoError(t, err)
				results[i] = v
			}()
		}

		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.LessOrEqual(t, calls.Load(), int32(2))
		for _, v := range results {
			assert.Equal(t, 42, v)
		}
	})
}
