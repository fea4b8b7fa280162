// Package session keeps small per-visitor values server-side, keyed by the
// opaque session id carried in the visitor's cookie.
package session

import (
	"barber/shared"
	"barber/shared/cache"
	"context"
	"errors"
	"fmt"
)

const cacheKeySession = "session"

type contextKey struct{}

type Store interface {
	Put(ctx context.Context, sessionID, key, value string, ttl int) error
	// Pull reads and removes a value; a missing value yields fallback.
	Pull(ctx context.Context, sessionID, key, fallback string) (string, error)
}

type storeImpl struct {
	cache cache.Cache
}

func New(c cache.Cache) Store {
	return &storeImpl{cache: c}
}

func (s *storeImpl) Put(ctx context.Context, sessionID, key, value string, ttl int) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}

	if err := s.cache.Save(ctx, shared.BuildCacheKey(cacheKeySession, sessionID, key), value, ttl); err != nil {
		return fmt.Errorf("failed to put session value: %w", err)
	}

	return nil
}

func (s *storeImpl) Pull(ctx context.Context, sessionID, key, fallback string) (string, error) {
	if sessionID == "" {
		return fallback, nil
	}

	value, err := s.cache.Pull(ctx, shared.BuildCacheKey(cacheKeySession, sessionID, key))
	if errors.Is(err, cache.Nil) {
		return fallback, nil
	}

	if err != nil {
		return fallback, fmt.Errorf("failed to pull session value: %w", err)
	}

	return value, nil
}

// WithID stores the session id on the request context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IDFromContext returns the session id set by WithID, or "".
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)

	return id
}
