package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

type toggleBody struct {
	HabitID   string `json:"habit_id"`
	Completed bool   `json:"completed"`
}

func TestProgressHandler_Toggle(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/v1/progress/drink-water/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, toggleBody{HabitID: "drink-water", Completed: true}, decode[toggleBody](t, w))

	w = srv.do(t, http.MethodPost, "/api/v1/progress/drink-water/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[toggleBody](t, w).Completed, "second toggle restores the flag")
}

func TestProgressHandler_Toggle_StorageDown(t *testing.T) {
	srv := newTestServer(t)
	srv.store.failWrites.Store(true)

	w := srv.do(t, http.MethodPost, "/api/v1/progress/read/toggle", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "storage unavailable")

	w = srv.do(t, http.MethodGet, "/api/v1/progress/today?habit_ids=read", nil)
	require.Equal(t, http.StatusOK, w.Code)
	progress := decode[[]domain.HabitProgress](t, w)
	require.Len(t, progress, 1)
	assert.False(t, progress[0].CompletedToday, "failed write leaves state unchanged")
}

func TestProgressHandler_Today(t *testing.T) {
	srv := newTestServer(t)
	srv.do(t, http.MethodPost, "/api/v1/progress/read/toggle", nil)

	t.Run("Explicit comma-separated IDs", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/progress/today?habit_ids=read,workout", nil)
		require.Equal(t, http.StatusOK, w.Code)

		progress := decode[[]domain.HabitProgress](t, w)
		require.Len(t, progress, 2)
		assert.Equal(t, "read", progress[0].HabitID)
		assert.True(t, progress[0].CompletedToday)
		require.Len(t, progress[0].History, domain.HistoryDays)
		assert.True(t, progress[0].History[domain.HistoryDays-1], "today is the last history entry")
		assert.False(t, progress[1].CompletedToday)
	})

	t.Run("Repeated parameters", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/progress/today?habit_ids=read&habit_ids=stretch", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]domain.HabitProgress](t, w), 2)
	})

	t.Run("Defaults to the selection", func(t *testing.T) {
		srv.do(t, http.MethodPut, "/api/v1/habits/selected", map[string]any{"habit_ids": []string{"read"}})

		w := srv.do(t, http.MethodGet, "/api/v1/progress/today", nil)
		require.Equal(t, http.StatusOK, w.Code)
		progress := decode[[]domain.HabitProgress](t, w)
		require.Len(t, progress, 1)
		assert.Equal(t, "read", progress[0].HabitID)
	})

	t.Run("Empty parameter means no habits", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/progress/today?habit_ids=", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[[]domain.HabitProgress](t, w))
	})
}

func TestProgressHandler_DailyStatsAndReset(t *testing.T) {
	srv := newTestServer(t)
	srv.do(t, http.MethodPut, "/api/v1/habits/selected", map[string]any{
		"habit_ids": []string{"drink-water", "read"},
	})

	stats := func() domain.DailyStats {
		w := srv.do(t, http.MethodGet, "/api/v1/progress/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		return decode[domain.DailyStats](t, w)
	}

	assert.Equal(t, domain.DailyStats{Completed: 0, Total: 2, Percentage: 0}, stats())

	srv.do(t, http.MethodPost, "/api/v1/progress/drink-water/toggle", nil)
	assert.Equal(t, domain.DailyStats{Completed: 1, Total: 2, Percentage: 50}, stats())

	srv.do(t, http.MethodPost, "/api/v1/progress/read/toggle", nil)
	assert.Equal(t, domain.DailyStats{Completed: 2, Total: 2, Percentage: 100, AllCompleted: true}, stats())

	t.Run("Reset with explicit IDs", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/progress/reset", map[string]any{"habit_ids": []string{"read"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"reset":true}`, w.Body.String())
		assert.Equal(t, 1, stats().Completed)
	})

	t.Run("Reset without body uses the selection", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/progress/reset", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, stats().Completed)
	})

	t.Run("Reset with malformed body", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/progress/reset", []int{1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
