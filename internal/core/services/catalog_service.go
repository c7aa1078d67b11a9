package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

// CatalogService owns the predefined habits and the user's selection.
type CatalogService struct {
	catalog *domain.Catalog
	repo    domain.SelectionRepository
	logger  *zap.Logger
	latency time.Duration

	mu       sync.RWMutex
	selected []domain.Habit
}

// NewCatalogService loads the persisted selection once. A read failure is
// logged and leaves the selection empty.
func NewCatalogService(ctx context.Context, catalog *domain.Catalog, repo domain.SelectionRepository, opts Options) *CatalogService {
	s := &CatalogService{
		catalog: catalog,
		repo:    repo,
		logger:  opts.logger().With(zap.String("component", "catalog")),
		latency: opts.Latency,
	}

	stored, err := repo.Load(ctx)
	if err != nil {
		s.logger.Warn("Failed to load selected habits, starting empty", zap.Error(err))
		stored = nil
	}
	s.selected = s.resolve(stored)

	return s
}

// ListAll returns the full catalog. It fails only if ctx is done.
func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Habit, error) {
	if err := pause(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.catalog.All(), nil
}

// ListByCategory returns the catalog entries of one category, in catalog order.
func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]domain.Habit, error) {
	if err := pause(ctx, s.latency); err != nil {
		return nil, err
	}
	if !domain.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	out := []domain.Habit{}
	for _, h := range s.catalog.All() {
		if h.Category == category {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *CatalogService) GetSelected(ctx context.Context) ([]domain.Habit, error) {
	if err := pause(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyHabits(s.selected), nil
}

// SetSelected replaces the selection. Unknown and repeated IDs are dropped;
// the order of ids is kept.
func (s *CatalogService) SetSelected(ctx context.Context, ids []string) ([]domain.Habit, error) {
	if err := pause(ctx, s.latency); err != nil {
		return nil, err
	}

	if len(ids) > domain.MaxSelectedHabits {
		return nil, domain.ErrSelectionTooLarge
	}

	seen := make(map[string]bool, len(ids))
	habits := make([]domain.Habit, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		h, ok := s.catalog.Get(id)
		if !ok {
			s.logger.Debug("Dropping unknown habit from selection", zap.String("habit_id", id))
			continue
		}
		habits = append(habits, h)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, habits); err != nil {
		return nil, fmt.Errorf("catalog service: save selection: %w", err)
	}
	s.selected = habits

	s.logger.Info("Selection updated", zap.Strings("habit_ids", domain.IDs(habits)))

	return copyHabits(habits), nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (domain.Habit, error) {
	if err := pause(ctx, s.latency); err != nil {
		return domain.Habit{}, err
	}

	h, ok := s.catalog.Get(id)
	if !ok {
		return domain.Habit{}, fmt.Errorf("%w: %s", domain.ErrHabitNotFound, id)
	}
	return h, nil
}

// resolve maps stored copies back onto the current catalog records.
func (s *CatalogService) resolve(stored []domain.Habit) []domain.Habit {
	seen := make(map[string]bool, len(stored))
	habits := make([]domain.Habit, 0, len(stored))
	for _, h := range stored {
		current, ok := s.catalog.Get(h.ID)
		if !ok || seen[h.ID] {
			continue
		}
		seen[h.ID] = true
		habits = append(habits, current)
		if len(habits) == domain.MaxSelectedHabits {
			break
		}
	}
	return habits
}

func copyHabits(in []domain.Habit) []domain.Habit {
	out := make([]domain.Habit, len(in))
	copy(out, in)
	return out
}
