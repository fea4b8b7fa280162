package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"barber/config"
	"barber/infras/otel"
	"barber/infras/redis"
	"barber/shared/timezone"
	"context"
	"encoding/json"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = goRedis.Nil
)

// Cache is the shared key-value store behind catalog caching, sessions and
// rate limit counters. Pull and Increment are atomic per key.
type Cache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Pull(ctx context.Context, key string) (value string, err error)
	Increment(ctx context.Context, key string, duration int) (count int64, err error)
}

// New picks the backend configured by CACHE_DRIVER.
func New(cfg *config.Config, ot otel.Otel, clock timezone.Clock) Cache {
	if cfg.Cache.Driver == config.CacheDriverMemory {
		log.Warn().Msg("Using in-memory cache, state is not shared between instances")

		return NewMemoryCache(clock)
	}

	return NewRedisCache(redis.New(cfg), ot)
}

func encode(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal cache value: %w", err)
		}

		return raw, nil
	}
}

func decode(raw []byte, value any) error {
	if v, ok := value.(*string); ok {
		*v = string(raw)

		return nil
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}
