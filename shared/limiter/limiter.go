// Package limiter counts attempts per key in fixed windows on top of the cache.
package limiter

import (
	"barber/shared/cache"
	"context"
	"errors"
	"fmt"
	"strconv"
)

type Limiter interface {
	// TooManyAttempts reports whether key already has maxAttempts hits in its window.
	TooManyAttempts(ctx context.Context, key string, maxAttempts int) (bool, error)
	// Hit records an attempt and returns the count in the current window. The
	// window starts with the first hit and lasts decaySeconds.
	Hit(ctx context.Context, key string, decaySeconds int) (int, error)
	Attempts(ctx context.Context, key string) (int, error)
}

type limiterImpl struct {
	cache cache.Cache
}

func New(c cache.Cache) Limiter {
	return &limiterImpl{cache: c}
}

func (l *limiterImpl) Attempts(ctx context.Context, key string) (int, error) {
	var raw string

	err := l.cache.Get(ctx, key, &raw)
	if errors.Is(err, cache.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to read attempts: %w", err)
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid attempts counter %q: %w", raw, err)
	}

	return count, nil
}

func (l *limiterImpl) TooManyAttempts(ctx context.Context, key string, maxAttempts int) (bool, error) {
	count, err := l.Attempts(ctx, key)
	if err != nil {
		return false, err
	}

	return count >= maxAttempts, nil
}

func (l *limiterImpl) Hit(ctx context.Context, key string, decaySeconds int) (int, error) {
	count, err := l.cache.Increment(ctx, key, decaySeconds)
	if err != nil {
		return 0, fmt.Errorf("failed to hit limiter: %w", err)
	}

	return int(count), nil
}
