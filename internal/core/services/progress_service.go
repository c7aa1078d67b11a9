package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

// StreakQueue receives the completed dates of a habit after every change.
type StreakQueue interface {
	Enqueue(habitID string, completedDates []string, today string)
}

// ProgressService owns the progress log. The log is loaded once and every
// mutation is written through before the cached copy is replaced.
type ProgressService struct {
	repo    domain.ProgressRepository
	streaks StreakQueue
	logger  *zap.Logger
	latency time.Duration
	now     func() time.Time

	mu  sync.Mutex
	log domain.ProgressLog
}

// NewProgressService loads the persisted log. streaks may be nil.
func NewProgressService(ctx context.Context, repo domain.ProgressRepository, streaks StreakQueue, opts Options) *ProgressService {
	s := &ProgressService{
		repo:    repo,
		streaks: streaks,
		logger:  opts.logger().With(zap.String("component", "progress")),
		latency: opts.Latency,
		now:     opts.clock(),
	}

	log, err := repo.Load(ctx)
	if err != nil {
		s.logger.Warn("Failed to load progress log, starting empty", zap.Error(err))
		log = nil
	}
	if log == nil {
		log = domain.ProgressLog{}
	}
	s.log = log

	return s
}

func (s *ProgressService) today() (time.Time, string) {
	now := s.now()
	return now, domain.DateKey(now)
}

func (s *ProgressService) GetTodayProgress(ctx context.Context, habitIDs []string) ([]domain.HabitProgress, error) {
	if err := pause(ctx, s.latency); err != nil {
		return nil, err
	}

	now, today := s.today()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.HabitProgress, 0, len(habitIDs))
	for _, id := range habitIDs {
		out = append(out, domain.HabitProgress{
			HabitID:        id,
			CompletedToday: s.log.Completed(today, id),
			History:        s.log.History(id, now, domain.HistoryDays),
		})
	}
	return out, nil
}

// ToggleHabit flips today's flag for habitID and returns the new value.
func (s *ProgressService) ToggleHabit(ctx context.Context, habitID string) (bool, error) {
	if err := pause(ctx, s.latency); err != nil {
		return false, err
	}

	_, today := s.today()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.log.Clone()
	state := !next.Completed(today, habitID)
	next.Set(today, habitID, state)

	if err := s.commit(ctx, next); err != nil {
		return false, fmt.Errorf("progress service: toggle %s: %w", habitID, err)
	}

	s.logger.Debug("Habit toggled",
		zap.String("habit_id", habitID),
		zap.String("date", today),
		zap.Bool("completed", state))

	s.notify(today, habitID)

	return state, nil
}

// ResetToday clears today's flag for every habit in habitIDs with one write.
func (s *ProgressService) ResetToday(ctx context.Context, habitIDs []string) (bool, error) {
	if err := pause(ctx, s.latency); err != nil {
		return false, err
	}

	_, today := s.today()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.log.Clone()
	next.EnsureDay(today)
	for _, id := range habitIDs {
		next.Set(today, id, false)
	}

	if err := s.commit(ctx, next); err != nil {
		return false, fmt.Errorf("progress service: reset %s: %w", today, err)
	}

	s.logger.Info("Day reset", zap.String("date", today), zap.Int("habits", len(habitIDs)))

	s.notify(today, habitIDs...)

	return true, nil
}

func (s *ProgressService) GetDailyStats(ctx context.Context, habitIDs []string) (domain.DailyStats, error) {
	if err := pause(ctx, s.latency); err != nil {
		return domain.DailyStats{}, err
	}

	_, today := s.today()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.log.DailyStats(today, habitIDs), nil
}

// Snapshot returns a copy of the log together with the current time.
func (s *ProgressService) Snapshot() (domain.ProgressLog, time.Time) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.log.Clone(), now
}

// commit must be called with s.mu held.
func (s *ProgressService) commit(ctx context.Context, next domain.ProgressLog) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.log = next
	return nil
}

// notify must be called with s.mu held.
func (s *ProgressService) notify(today string, habitIDs ...string) {
	if s.streaks == nil {
		return
	}
	for _, id := range habitIDs {
		s.streaks.Enqueue(id, s.log.CompletedDates(id), today)
	}
}
