package cache_test

import (
	"barber/shared/cache"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newClock() *manualClock {
	return &manualClock{now: time.Date(2025, time.July, 14, 10, 0, 0, 0, time.UTC)}
}

func TestMemoryCache_SaveGet(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	store := cache.NewMemoryCache(clock)

	type payload struct {
		Name string `json:"name"`
	}

	require.NoError(t, store.Save(ctx, "raw", "value", 60))
	require.NoError(t, store.Save(ctx, "json", payload{Name: "Budi"}, 60))

	var raw string
	require.NoError(t, store.Get(ctx, "raw", &raw))
	assert.Equal(t, "value", raw)

	var got payload
	require.NoError(t, store.Get(ctx, "json", &got))
	assert.Equal(t, "Budi", got.Name)

	clock.Advance(61 * time.Second)

	err := store.Get(ctx, "raw", &raw)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestMemoryCache_PullIsReadOnce(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(newClock())

	require.NoError(t, store.Save(ctx, "captcha", "7", 60))

	got, err := store.Pull(ctx, "captcha")
	require.NoError(t, err)
	assert.Equal(t, "7", got)

	_, err = store.Pull(ctx, "captcha")
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestMemoryCache_IncrementFixedWindow(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	store := cache.NewMemoryCache(clock)

	for want := int64(1); want <= 3; want++ {
		got, err := store.Increment(ctx, "hits", 60)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		clock.Advance(10 * time.Second)
	}

	// the window started at the first hit, not the last
	clock.Advance(31 * time.Second)

	got, err := store.Increment(ctx, "hits", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestMemoryCache_IncrementConcurrent(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(newClock())

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, _ = store.Increment(ctx, "hits", 60)
		}()
	}

	wg.Wait()

	var count string
	require.NoError(t, store.Get(ctx, "hits", &count))
	assert.Equal(t, "50", count)
}
