package domain_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestProgressLog_History(t *testing.T) {
	today := time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)

	t.Run("Never toggled habit has 7 false values", func(t *testing.T) {
		log := domain.ProgressLog{}
		assert.Equal(t, make([]bool, domain.HistoryDays), log.History("h1", today, domain.HistoryDays))
	})

	t.Run("Oldest first, today last", func(t *testing.T) {
		log := domain.ProgressLog{}
		log.Set("2024-03-04", "h1", true)
		log.Set("2024-03-10", "h1", true)
		log.Set("2024-03-03", "h1", true) // outside the window

		assert.Equal(t,
			[]bool{true, false, false, false, false, false, true},
			log.History("h1", today, domain.HistoryDays))
	})

	t.Run("Crosses month boundaries", func(t *testing.T) {
		log := domain.ProgressLog{}
		log.Set("2024-02-29", "h1", true)

		first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
		assert.Equal(t,
			[]bool{false, false, false, false, false, true, false},
			log.History("h1", first, domain.HistoryDays))
	})
}

func TestProgressLog_SetAndClone(t *testing.T) {
	log := domain.ProgressLog{}
	assert.False(t, log.Completed("2024-01-01", "h1"))

	log.Set("2024-01-01", "h1", true)
	assert.True(t, log.Completed("2024-01-01", "h1"))

	clone := log.Clone()
	clone.Set("2024-01-01", "h1", false)
	clone.Set("2024-01-02", "h2", true)

	assert.True(t, log.Completed("2024-01-01", "h1"), "clone must not alias the original")
	assert.NotContains(t, log, "2024-01-02")

	log.EnsureDay("2024-01-05")
	assert.Contains(t, log, "2024-01-05")
	assert.Empty(t, log["2024-01-05"])
}

func TestNewDailyStats(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      domain.DailyStats
	}{
		{"Empty selection", 0, 0, domain.DailyStats{}},
		{"Half done", 1, 2, domain.DailyStats{Completed: 1, Total: 2, Percentage: 50}},
		{"All done", 2, 2, domain.DailyStats{Completed: 2, Total: 2, Percentage: 100, AllCompleted: true}},
		{"Rounds down", 1, 3, domain.DailyStats{Completed: 1, Total: 3, Percentage: 33}},
		{"Rounds up", 2, 3, domain.DailyStats{Completed: 2, Total: 3, Percentage: 67}},
		{"None done", 0, 4, domain.DailyStats{Completed: 0, Total: 4, Percentage: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NewDailyStats(tt.completed, tt.total))
		})
	}
}

func TestProgressLog_DailyStats(t *testing.T) {
	log := domain.ProgressLog{}
	log.Set("2024-01-01", "h1", true)
	log.Set("2024-01-01", "h2", false)
	log.Set("2023-12-31", "h2", true)

	stats := log.DailyStats("2024-01-01", []string{"h1", "h2"})
	assert.Equal(t, domain.DailyStats{Completed: 1, Total: 2, Percentage: 50}, stats)
}

func TestCalculateStreaks(t *testing.T) {
	today := "2024-05-20"

	tests := []struct {
		name  string
		dates []string
		want  domain.Streak
	}{
		{"No dates", nil, domain.Streak{}},
		{"Only today", []string{"2024-05-20"}, domain.Streak{Current: 1, Longest: 1}},
		{"Only yesterday keeps streak alive", []string{"2024-05-19"}, domain.Streak{Current: 1, Longest: 1}},
		{"Two days ago breaks streak", []string{"2024-05-18"}, domain.Streak{Current: 0, Longest: 1}},
		{"Perfect run", []string{"2024-05-18", "2024-05-19", "2024-05-20"}, domain.Streak{Current: 3, Longest: 3}},
		{"Gap", []string{"2024-05-16", "2024-05-19", "2024-05-20"}, domain.Streak{Current: 2, Longest: 2}},
		{
			"Longest in the past",
			[]string{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04", "2024-05-20"},
			domain.Streak{Current: 1, Longest: 4},
		},
		{"Duplicates ignored", []string{"2024-05-20", "2024-05-20"}, domain.Streak{Current: 1, Longest: 1}},
		{"Future and malformed dates ignored", []string{"2024-05-21", "garbage", "2024-05-20"}, domain.Streak{Current: 1, Longest: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CalculateStreaks(tt.dates, today))
		})
	}
}

func TestProgressLog_CompletedDates(t *testing.T) {
	log := domain.ProgressLog{}
	log.Set("2024-01-03", "h1", true)
	log.Set("2024-01-01", "h1", true)
	log.Set("2024-01-02", "h1", false)
	log.Set("2024-01-02", "h2", true)

	assert.Equal(t, []string{"2024-01-01", "2024-01-03"}, log.CompletedDates("h1"))
	assert.Empty(t, log.CompletedDates("unknown"))
}
