package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
	"github.com/comitanigiacomo/habitpal/internal/core/services"
)

type HabitHandler struct {
	svc    *services.CatalogService
	logger *zap.Logger
}

func NewHabitHandler(svc *services.CatalogService, logger *zap.Logger) *HabitHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HabitHandler{
		svc:    svc,
		logger: logger,
	}
}

type updateSelectionRequest struct {
	HabitIDs []string `json:"habit_ids"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.GET("", h.List)
		habits.GET("/selected", h.GetSelected)
		habits.PUT("/selected", h.UpdateSelected)
		habits.GET("/:id", h.GetByID)
	}
}

// List godoc
// @Summary  List the predefined habit catalog
// @Tags     habits
// @Produce  json
// @Param    category query string false "Only habits of this category"
// @Success  200 {array} domain.Habit
// @Failure  400 {object} errorResponse
// @Router   /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		list []domain.Habit
		err  error
	)
	if category, ok := c.GetQuery("category"); ok {
		list, err = h.svc.ListByCategory(ctx, category)
	} else {
		list, err = h.svc.ListAll(ctx)
	}
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetSelected godoc
// @Summary  Current habit selection
// @Tags     habits
// @Produce  json
// @Success  200 {array} domain.Habit
// @Router   /habits/selected [get]
func (h *HabitHandler) GetSelected(c *gin.Context) {
	list, err := h.svc.GetSelected(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateSelected godoc
// @Summary  Replace the habit selection (max 5)
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    body body updateSelectionRequest true "Habit IDs"
// @Success  200 {array} domain.Habit
// @Failure  400 {object} errorResponse
// @Failure  503 {object} errorResponse
// @Router   /habits/selected [put]
func (h *HabitHandler) UpdateSelected(c *gin.Context) {
	var req updateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	list, err := h.svc.SetSelected(c.Request.Context(), req.HabitIDs)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetByID godoc
// @Summary  Look up one catalog habit
// @Tags     habits
// @Produce  json
// @Param    id path string true "Habit ID"
// @Success  200 {object} domain.Habit
// @Failure  404 {object} errorResponse
// @Router   /habits/{id} [get]
func (h *HabitHandler) GetByID(c *gin.Context) {
	habit, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}
