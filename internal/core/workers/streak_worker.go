package workers

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

const queueSize = 100

type StreakJob struct {
	HabitID        string
	CompletedDates []string
	Today          string
	// Revision orders jobs of the same habit; see Enqueue.
	Revision uint64
}

type cachedStreak struct {
	today    string
	revision uint64
	streak   domain.Streak
}

// StreakWorker recomputes habit streaks off the request path and caches the
// latest result per habit. A cached streak is served only while no newer job
// for the habit has been enqueued, so a late or dropped job is a cache miss
// rather than a stale hit.
type StreakWorker struct {
	logger *zap.Logger
	jobs   chan StreakJob
	done   chan struct{}

	mu     sync.RWMutex
	cache  map[string]cachedStreak
	latest map[string]uint64
}

func NewStreakWorker(logger *zap.Logger) *StreakWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreakWorker{
		logger: logger.With(zap.String("component", "streak_worker")),
		jobs:   make(chan StreakJob, queueSize),
		done:   make(chan struct{}),
		cache:  make(map[string]cachedStreak),
		latest: make(map[string]uint64),
	}
}

// Start runs the consumer until ctx is done. It must be called at most once.
func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)

		w.logger.Info("Streak worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(job)
			case <-ctx.Done():
				w.logger.Info("Streak worker shutting down")
				return
			}
		}
	}()
}

// Wait blocks until the goroutine launched by Start has returned.
func (w *StreakWorker) Wait() {
	<-w.done
}

// Enqueue bumps the habit's revision before queuing, which invalidates the
// cached streak even when the queue is full and the job is dropped.
func (w *StreakWorker) Enqueue(habitID string, completedDates []string, today string) {
	w.mu.Lock()
	w.latest[habitID]++
	rev := w.latest[habitID]
	w.mu.Unlock()

	job := StreakJob{HabitID: habitID, CompletedDates: completedDates, Today: today, Revision: rev}
	select {
	case w.jobs <- job:
	default:
		w.logger.Warn("Streak queue full, dropping job", zap.String("habit_id", habitID))
	}
}

// Streak returns the cached streak of habitID if it was computed for today
// from the most recently enqueued completion dates.
func (w *StreakWorker) Streak(habitID, today string) (domain.Streak, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	c, ok := w.cache[habitID]
	if !ok || c.today != today || c.revision != w.latest[habitID] {
		return domain.Streak{}, false
	}
	return c.streak, true
}

func (w *StreakWorker) processJob(job StreakJob) {
	streak := domain.CalculateStreaks(job.CompletedDates, job.Today)

	w.mu.Lock()
	prev, had := w.cache[job.HabitID]
	if had && prev.revision > job.Revision {
		w.mu.Unlock()
		return
	}
	w.cache[job.HabitID] = cachedStreak{today: job.Today, revision: job.Revision, streak: streak}
	w.mu.Unlock()

	if !had || prev.streak != streak {
		w.logger.Debug("Streak updated",
			zap.String("habit_id", job.HabitID),
			zap.Int("current", streak.Current),
			zap.Int("longest", streak.Longest))
	}
}
