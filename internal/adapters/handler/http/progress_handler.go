package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
	"github.com/comitanigiacomo/habitpal/internal/core/services"
)

type ProgressHandler struct {
	svc     *services.ProgressService
	catalog *services.CatalogService
	logger  *zap.Logger
}

func NewProgressHandler(svc *services.ProgressService, catalog *services.CatalogService, logger *zap.Logger) *ProgressHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressHandler{
		svc:     svc,
		catalog: catalog,
		logger:  logger,
	}
}

type resetRequest struct {
	HabitIDs []string `json:"habit_ids"`
}

type toggleResponse struct {
	HabitID   string `json:"habit_id"`
	Completed bool   `json:"completed"`
}

type resetResponse struct {
	Reset bool `json:"reset"`
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	progress := router.Group("/progress")
	{
		progress.GET("/today", h.Today)
		progress.GET("/stats", h.DailyStats)
		progress.POST("/reset", h.Reset)
		progress.POST("/:habitId/toggle", h.Toggle)
	}
}

// selectionIDs falls back to the current selection when the caller did not
// name any habits.
func selectionIDs(ctx context.Context, c *gin.Context, catalog *services.CatalogService) ([]string, error) {
	if ids, ok := habitIDsFromQuery(c); ok {
		return ids, nil
	}
	selected, err := catalog.GetSelected(ctx)
	if err != nil {
		return nil, err
	}
	return domain.IDs(selected), nil
}

// Today godoc
// @Summary  Today's completion state and 7-day history
// @Tags     progress
// @Produce  json
// @Param    habit_ids query string false "Comma-separated habit IDs (default: current selection)"
// @Success  200 {array} domain.HabitProgress
// @Router   /progress/today [get]
func (h *ProgressHandler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	ids, err := selectionIDs(ctx, c, h.catalog)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	progress, err := h.svc.GetTodayProgress(ctx, ids)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// DailyStats godoc
// @Summary  Completion count and percentage for today
// @Tags     progress
// @Produce  json
// @Param    habit_ids query string false "Comma-separated habit IDs (default: current selection)"
// @Success  200 {object} domain.DailyStats
// @Router   /progress/stats [get]
func (h *ProgressHandler) DailyStats(c *gin.Context) {
	ctx := c.Request.Context()

	ids, err := selectionIDs(ctx, c, h.catalog)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	stats, err := h.svc.GetDailyStats(ctx, ids)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Toggle godoc
// @Summary  Flip today's completion flag of a habit
// @Tags     progress
// @Produce  json
// @Param    habitId path string true "Habit ID"
// @Success  200 {object} toggleResponse
// @Failure  503 {object} errorResponse
// @Router   /progress/{habitId}/toggle [post]
func (h *ProgressHandler) Toggle(c *gin.Context) {
	habitID := c.Param("habitId")

	state, err := h.svc.ToggleHabit(c.Request.Context(), habitID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toggleResponse{HabitID: habitID, Completed: state})
}

// Reset godoc
// @Summary  Clear today's progress
// @Tags     progress
// @Accept   json
// @Produce  json
// @Param    body body resetRequest false "Habit IDs (default: current selection)"
// @Success  200 {object} resetResponse
// @Failure  503 {object} errorResponse
// @Router   /progress/reset [post]
func (h *ProgressHandler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	var req resetRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Message: err.Error()})
			return
		}
	}

	ids := req.HabitIDs
	if ids == nil {
		selected, err := h.catalog.GetSelected(ctx)
		if err != nil {
			handleError(c, h.logger, err)
			return
		}
		ids = domain.IDs(selected)
	}

	ok, err := h.svc.ResetToday(ctx, ids)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resetResponse{Reset: ok})
}
