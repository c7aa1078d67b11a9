package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func handleError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Message: err.Error()})

	case errors.Is(err, domain.ErrHabitNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "habit not found"})

	case errors.Is(err, domain.ErrPersistence):
		logger.Error("Storage failure",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, errorResponse{
			Error:   "storage unavailable",
			Message: "your progress was not saved, please retry",
		})

	default:
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// habitIDsFromQuery reads habit_ids as a comma-separated list and/or a
// repeated parameter. ok is false when the parameter is absent.
func habitIDsFromQuery(c *gin.Context) (ids []string, ok bool) {
	values, ok := c.GetQueryArray("habit_ids")
	if !ok {
		return nil, false
	}

	ids = []string{}
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids, true
}
