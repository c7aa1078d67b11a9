package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

type ProgressSnapshotter interface {
	Snapshot() (domain.ProgressLog, time.Time)
}

type StreakCache interface {
	Streak(habitID, today string) (domain.Streak, bool)
}

type StatsService struct {
	catalog  *domain.Catalog
	progress ProgressSnapshotter
	streaks  StreakCache
	latency  time.Duration
}

// NewStatsService builds the weekly report service. streaks may be nil.
func NewStatsService(catalog *domain.Catalog, progress ProgressSnapshotter, streaks StreakCache, opts Options) *StatsService {
	return &StatsService{
		catalog:  catalog,
		progress: progress,
		streaks:  streaks,
		latency:  opts.Latency,
	}
}

func (s *StatsService) GetWeeklyStats(ctx context.Context, input domain.StatsInput) (*domain.WeeklyStats, error) {
	if err := pause(ctx, s.latency); err != nil {
		return nil, err
	}

	log, now := s.progress.Snapshot()

	endDate := input.EndDate
	if endDate.IsZero() {
		endDate = now
	}
	startDate := endDate.AddDate(0, 0, -(domain.HistoryDays - 1))
	endKey := domain.DateKey(endDate)
	isToday := endKey == domain.DateKey(now)

	habits := make([]domain.Habit, 0, len(input.HabitIDs))
	seen := make(map[string]bool, len(input.HabitIDs))
	for _, id := range input.HabitIDs {
		h, ok := s.catalog.Get(id)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		habits = append(habits, h)
	}

	stats := &domain.WeeklyStats{
		StartDate:   domain.DateKey(startDate),
		EndDate:     endKey,
		TotalHabits: len(habits),
		HabitStats:  make([]domain.HabitStat, 0, len(habits)),
	}

	totalDaysPossible := 0
	totalDaysCompleted := 0

	for _, h := range habits {
		hStat := domain.HabitStat{
			HabitID:       h.ID,
			Name:          h.Name,
			Icon:          h.Icon,
			Category:      h.Category,
			DailyProgress: log.History(h.ID, endDate, domain.HistoryDays),
		}

		for _, done := range hStat.DailyProgress {
			if done {
				hStat.DaysCompleted++
			}
		}
		hStat.CompletionRate = float64(hStat.DaysCompleted) / float64(domain.HistoryDays) * 100

		totalDaysCompleted += hStat.DaysCompleted
		totalDaysPossible += domain.HistoryDays

		streak, cached := domain.Streak{}, false
		if isToday && s.streaks != nil {
			streak, cached = s.streaks.Streak(h.ID, endKey)
		}
		if !cached {
			streak = domain.CalculateStreaks(log.CompletedDates(h.ID), endKey)
		}
		hStat.CurrentStreak = streak.Current
		hStat.LongestStreak = streak.Longest

		stats.HabitStats = append(stats.HabitStats, hStat)
	}

	if totalDaysPossible > 0 {
		stats.OverallRate = float64(totalDaysCompleted) / float64(totalDaysPossible) * 100
	}

	return stats, nil
}
