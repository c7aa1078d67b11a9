package repository

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

var _ domain.KVStore = (*InMemoryStore)(nil)

type InMemoryStore struct {
	store map[string]string

	mu sync.RWMutex
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		store: make(map[string]string),
	}
}

func (s *InMemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.store[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

func (s *InMemoryStore) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[key] = value
	return nil
}

func (s *InMemoryStore) Ping(ctx context.Context) error {
	return nil
}
