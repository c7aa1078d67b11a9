package domain

import (
	"context"
	"errors"
)

var (
	ErrPersistence   = errors.New("persistence failure")
	ErrKeyNotFound   = errors.New("key not found")
	ErrCorruptRecord = errors.New("corrupt record")
)

const (
	KeySelectedHabits = "selected-habits"
	KeyProgressLog    = "progress-log"
)

// KVStore is the storage substrate for both persisted records.
type KVStore interface {
	// Get returns the stored value or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

type SelectionRepository interface {
	// Load returns the persisted selection. A missing record yields an empty
	// slice and no error.
	Load(ctx context.Context) ([]Habit, error)

	// Save replaces the persisted selection wholesale.
	Save(ctx context.Context, habits []Habit) error
}

type ProgressRepository interface {
	// Load returns the persisted log. A missing record yields an empty log.
	Load(ctx context.Context) (ProgressLog, error)

	// Save rewrites the whole log.
	Save(ctx context.Context, log ProgressLog) error
}
