package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/comitanigiacomo/habitpal/docs"
	"github.com/comitanigiacomo/habitpal/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

const healthTimeout = 2 * time.Second

type RouterDependencies struct {
	HabitHandler    *HabitHandler
	ProgressHandler *ProgressHandler
	StatsHandler    *StatsHandler

	Store     domain.KVStore
	Redis     *redis.Client
	Logger    *zap.Logger
	StartTime time.Time

	RateLimit  int
	RateWindow time.Duration
	Namespace  string
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil && deps.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(deps.Redis, deps.RateLimit, deps.RateWindow, deps.Namespace, logger)
		router.Use(limiter.Handler())
	}

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		storeStatus := "connected"
		if deps.Store == nil || deps.Store.Ping(ctx) != nil {
			storeStatus = "unreachable"
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(ctx).Err() != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode, status := http.StatusOK, "ok"
		if storeStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode, status = http.StatusServiceUnavailable, "degraded"
		}

		c.JSON(statusCode, gin.H{
			"status":  status,
			"storage": storeStatus,
			"redis":   redisStatus,
			"uptime":  time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	deps.HabitHandler.RegisterRoutes(apiV1)
	deps.ProgressHandler.RegisterRoutes(apiV1)
	deps.StatsHandler.RegisterRoutes(apiV1)

	return router
}
