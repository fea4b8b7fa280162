package cache

import (
	"barber/shared/timezone"
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// memoryCache is a single-process Cache for local runs and tests. All
// operations hold one mutex, which makes Pull and Increment atomic.
type memoryCache struct {
	mu      sync.Mutex
	clock   timezone.Clock
	entries map[string]memoryEntry
}

func NewMemoryCache(clock timezone.Clock) Cache {
	if clock == nil {
		clock = timezone.NewClock()
	}

	return &memoryCache{
		clock:   clock,
		entries: map[string]memoryEntry{},
	}
}

func (cache *memoryCache) expiry(duration int) time.Time {
	if duration <= 0 {
		return time.Time{}
	}

	return cache.clock.Now().Add(time.Duration(duration) * time.Second)
}

// lookup returns a live entry and evicts an expired one. Callers hold mu.
func (cache *memoryCache) lookup(key string) (memoryEntry, bool) {
	entry, ok := cache.entries[key]
	if !ok {
		return memoryEntry{}, false
	}

	if entry.expired(cache.clock.Now()) {
		delete(cache.entries, key)

		return memoryEntry{}, false
	}

	return entry, true
}

func (cache *memoryCache) Save(_ context.Context, key string, value any, duration int) error {
	raw, err := encode(value)
	if err != nil {
		return err
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.entries[key] = memoryEntry{value: raw, expiresAt: cache.expiry(duration)}

	return nil
}

func (cache *memoryCache) Get(_ context.Context, key string, value any) error {
	cache.mu.Lock()
	entry, ok := cache.lookup(key)
	cache.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	return decode(entry.value, value)
}

func (cache *memoryCache) Pull(_ context.Context, key string) (string, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	entry, ok := cache.lookup(key)
	if !ok {
		return "", fmt.Errorf("failed to pull cache value: %w", Nil)
	}

	delete(cache.entries, key)

	return string(entry.value), nil
}

func (cache *memoryCache) Increment(_ context.Context, key string, duration int) (int64, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	entry, ok := cache.lookup(key)
	if !ok {
		entry = memoryEntry{value: []byte("0"), expiresAt: cache.expiry(duration)}
	}

	count, err := strconv.ParseInt(string(entry.value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	count++
	entry.value = []byte(strconv.FormatInt(count, 10))

	if entry.expiresAt.IsZero() {
		entry.expiresAt = cache.expiry(duration)
	}

	cache.entries[key] = entry

	return count, nil
}
