package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"estate/infras/otel"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	scanBatchSize         = 100
)

// Nil is returned (wrapped) by Get on a cache miss.
var Nil = redis.Nil

// RedisCache stores JSON encoded values. Strings are stored as is.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, ttlSeconds int) error
	Get(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Clear deletes every key matching the glob pattern.
func (c *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer func() { scope.TraceIfError(err); scope.End() }()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	iter := c.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err = iter.Err(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to scan cache keys")

		return fmt.Errorf("scanning cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err = c.client.Del(ctx, keys...).Err(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Int("keys", len(keys)).Msg("failed to clear cache")

		return fmt.Errorf("clearing cache: %w", err)
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer func() { scope.TraceIfError(err); scope.End() }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if err = c.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete cache value")

		return fmt.Errorf("deleting cache value: %w", err)
	}

	return nil
}

// Get decodes the cached value into value. A miss returns an error wrapping Nil and is
// not traced as a failure.
func (c *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer func() {
		if !errors.Is(err, Nil) {
			scope.TraceIfError(err)
		}
		scope.End()
	}()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("getting cache value: %w", err)
	}

	scope.SetAttribute("cache.hit", true)

	if target, ok := value.(*string); ok {
		*target = raw

		return nil
	}

	if err = json.Unmarshal([]byte(raw), value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode cache value")

		return fmt.Errorf("decoding cache value: %w", err)
	}

	return nil
}

func (c *redisCache) Save(ctx context.Context, key string, value any, ttlSeconds int) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer func() { scope.TraceIfError(err); scope.End() }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	payload, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode cache value")

		return err
	}

	if err = c.client.Set(ctx, key, payload, time.Duration(ttlSeconds)*time.Second).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache value")

		return fmt.Errorf("setting cache value: %w", err)
	}

	log.Debug().Str("key", key).Int("ttl_seconds", ttlSeconds).Msg("cache value saved")

	return nil
}

func encode(value any) ([]byte, error) {
	if s, ok := value.(string); ok {
		return []byte(s), nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding cache value: %w", err)
	}

	return payload, nil
}
