package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
	"github.com/comitanigiacomo/habitpal/internal/core/services"
)

type StatsHandler struct {
	svc     *services.StatsService
	catalog *services.CatalogService
	logger  *zap.Logger
}

func NewStatsHandler(svc *services.StatsService, catalog *services.CatalogService, logger *zap.Logger) *StatsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsHandler{
		svc:     svc,
		catalog: catalog,
		logger:  logger,
	}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats/weekly", h.GetWeeklyStats)
}

// GetWeeklyStats godoc
// @Summary  Seven-day report with streaks
// @Tags     stats
// @Produce  json
// @Param    habit_ids query string false "Comma-separated habit IDs (default: current selection)"
// @Param    end_date  query string false "Last day of the window, YYYY-MM-DD (default: today)"
// @Success  200 {object} domain.WeeklyStats
// @Failure  400 {object} errorResponse
// @Router   /stats/weekly [get]
func (h *StatsHandler) GetWeeklyStats(c *gin.Context) {
	ctx := c.Request.Context()

	var endDate time.Time
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateLayout, raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid end_date format, expected YYYY-MM-DD"})
			return
		}
		endDate = parsed
	}

	ids, err := selectionIDs(ctx, c, h.catalog)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	stats, err := h.svc.GetWeeklyStats(ctx, domain.StatsInput{
		HabitIDs: ids,
		EndDate:  endDate,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
