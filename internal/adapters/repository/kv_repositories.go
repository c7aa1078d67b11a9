package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

var (
	_ domain.SelectionRepository = (*KVSelectionRepository)(nil)
	_ domain.ProgressRepository  = (*KVProgressRepository)(nil)
)

// Key joins an optional namespace and a record name.
func Key(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + ":" + name
}

// KVSelectionRepository stores the selection as a JSON array of full habit
// records under one key.
type KVSelectionRepository struct {
	store domain.KVStore
	key   string
}

func NewKVSelectionRepository(store domain.KVStore, namespace string) *KVSelectionRepository {
	return &KVSelectionRepository{store: store, key: Key(namespace, domain.KeySelectedHabits)}
}

func (r *KVSelectionRepository) Load(ctx context.Context) ([]domain.Habit, error) {
	habits := []domain.Habit{}
	found, err := loadJSON(ctx, r.store, r.key, &habits)
	if err != nil || !found {
		return []domain.Habit{}, err
	}
	return habits, nil
}

func (r *KVSelectionRepository) Save(ctx context.Context, habits []domain.Habit) error {
	if habits == nil {
		habits = []domain.Habit{}
	}
	return saveJSON(ctx, r.store, r.key, habits)
}

// KVProgressRepository stores the whole progress log as one JSON object.
type KVProgressRepository struct {
	store domain.KVStore
	key   string
}

func NewKVProgressRepository(store domain.KVStore, namespace string) *KVProgressRepository {
	return &KVProgressRepository{store: store, key: Key(namespace, domain.KeyProgressLog)}
}

func (r *KVProgressRepository) Load(ctx context.Context) (domain.ProgressLog, error) {
	log := domain.ProgressLog{}
	found, err := loadJSON(ctx, r.store, r.key, &log)
	if err != nil || !found {
		return domain.ProgressLog{}, err
	}
	if log == nil {
		log = domain.ProgressLog{}
	}
	return log, nil
}

func (r *KVProgressRepository) Save(ctx context.Context, log domain.ProgressLog) error {
	if log == nil {
		log = domain.ProgressLog{}
	}
	return saveJSON(ctx, r.store, r.key, log)
}

func loadJSON(ctx context.Context, store domain.KVStore, key string, dst any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: read %s: %w", domain.ErrPersistence, key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("%w: %w: decode %s: %v", domain.ErrPersistence, domain.ErrCorruptRecord, key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, store domain.KVStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrPersistence, key, err)
	}

	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrPersistence, key, err)
	}
	return nil
}
