package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

var _ domain.KVStore = (*CachedStore)(nil)

// CachedStore is a Redis read-through cache in front of a durable store.
// Writes go to the durable store first and then drop the cached value.
type CachedStore struct {
	next   domain.KVStore
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedStore(next domain.KVStore, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedStore{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(zap.String("component", "cache")),
	}
}

func (s *CachedStore) cacheKey(key string) string {
	return fmt.Sprintf("cache:%s", key)
}

func (s *CachedStore) invalidate(ctx context.Context, key string) {
	if err := s.cache.Del(ctx, s.cacheKey(key)).Err(); err != nil {
		s.logger.Warn("Failed to invalidate", zap.String("key", key), zap.Error(err))
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) (string, error) {
	ck := s.cacheKey(key)

	val, err := s.cache.Get(ctx, ck).Result()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		s.logger.Warn("Redis read error", zap.String("key", key), zap.Error(err))
	}

	val, err = s.next.Get(ctx, key)
	if err != nil {
		return "", err
	}

	if setErr := s.cache.Set(ctx, ck, val, s.ttl).Err(); setErr != nil {
		s.logger.Warn("Redis set error", zap.String("key", key), zap.Error(setErr))
	}

	return val, nil
}

func (s *CachedStore) Set(ctx context.Context, key string, value string) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		return err
	}
	s.invalidate(ctx, key)
	return nil
}

// Ping reports the durable store's health; a Redis failure is only logged.
func (s *CachedStore) Ping(ctx context.Context) error {
	if err := s.cache.Ping(ctx).Err(); err != nil {
		s.logger.Warn("Redis unreachable, serving from durable store", zap.Error(err))
	}
	return s.next.Ping(ctx)
}
