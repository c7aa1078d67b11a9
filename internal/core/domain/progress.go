package domain

import (
	"math"
	"sort"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	HistoryDays = 7
)

// ProgressLog maps a local calendar date (YYYY-MM-DD) to the completion flag of
// each habit on that day. A missing date or habit means "not completed".
type ProgressLog map[string]map[string]bool

type DailyStats struct {
	Completed    int  `json:"completed"`
	Total        int  `json:"total"`
	Percentage   int  `json:"percentage"`
	AllCompleted bool `json:"allCompleted"`
}

type HabitProgress struct {
	HabitID        string `json:"habitId"`
	CompletedToday bool   `json:"completedToday"`
	History        []bool `json:"history"`
}

type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func (l ProgressLog) Completed(date, habitID string) bool {
	return l[date][habitID]
}

// Set records a flag, creating the day if absent.
func (l ProgressLog) Set(date, habitID string, completed bool) {
	day, ok := l[date]
	if !ok {
		day = make(map[string]bool)
		l[date] = day
	}
	day[habitID] = completed
}

// EnsureDay creates an empty entry for date if none exists.
func (l ProgressLog) EnsureDay(date string) {
	if _, ok := l[date]; !ok {
		l[date] = make(map[string]bool)
	}
}

func (l ProgressLog) Clone() ProgressLog {
	out := make(ProgressLog, len(l))
	for date, day := range l {
		copied := make(map[string]bool, len(day))
		for id, v := range day {
			copied[id] = v
		}
		out[date] = copied
	}
	return out
}

// History returns the flags for today-(days-1) .. today, oldest first.
func (l ProgressLog) History(habitID string, today time.Time, days int) []bool {
	history := make([]bool, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := DateKey(today.AddDate(0, 0, -i))
		history = append(history, l.Completed(date, habitID))
	}
	return history
}

// CompletedDates returns every date on which habitID was completed, ascending.
func (l ProgressLog) CompletedDates(habitID string) []string {
	var dates []string
	for date, day := range l {
		if day[habitID] {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}

func (l ProgressLog) DailyStats(date string, habitIDs []string) DailyStats {
	completed := 0
	for _, id := range habitIDs {
		if l.Completed(date, id) {
			completed++
		}
	}
	return NewDailyStats(completed, len(habitIDs))
}

func NewDailyStats(completed, total int) DailyStats {
	stats := DailyStats{
		Completed:    completed,
		Total:        total,
		AllCompleted: total > 0 && completed == total,
	}
	if total > 0 {
		stats.Percentage = int(math.Round(float64(completed) * 100 / float64(total)))
	}
	return stats
}

// CalculateStreaks derives the current and longest run of consecutive days
// from a set of YYYY-MM-DD dates. The current run only counts while its last
// day is today or yesterday.
func CalculateStreaks(dates []string, today string) Streak {
	todayDate, err := time.Parse(DateLayout, today)
	if err != nil {
		return Streak{}
	}

	seen := make(map[string]bool, len(dates))
	var sorted []time.Time
	for _, d := range dates {
		if seen[d] {
			continue
		}
		t, err := time.Parse(DateLayout, d)
		if err != nil || t.After(todayDate) {
			continue
		}
		seen[d] = true
		sorted = append(sorted, t)
	}

	if len(sorted) == 0 {
		return Streak{}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})

	var streak Streak

	if todayDate.Sub(sorted[0]) <= 24*time.Hour {
		streak.Current = 1
		for i := 0; i < len(sorted)-1; i++ {
			if sorted[i].Sub(sorted[i+1]) != 24*time.Hour {
				break
			}
			streak.Current++
		}
	}

	run := 1
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i].Sub(sorted[i+1]) == 24*time.Hour {
			run++
			continue
		}
		if run > streak.Longest {
			streak.Longest = run
		}
		run = 1
	}
	if run > streak.Longest {
		streak.Longest = run
	}

	return streak
}
