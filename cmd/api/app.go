package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitpal/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/habitpal/internal/adapters/handler/http"
	"github.com/comitanigiacomo/habitpal/internal/adapters/repository"
	"github.com/comitanigiacomo/habitpal/internal/config"
	"github.com/comitanigiacomo/habitpal/internal/core/domain"
	"github.com/comitanigiacomo/habitpal/internal/core/services"
	"github.com/comitanigiacomo/habitpal/internal/core/workers"
)

type app struct {
	router *gin.Engine
	worker *workers.StreakWorker
	store  domain.KVStore
	redis  *redis.Client

	closers []func() error
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// newApp wires storage, services, the streak worker and the router.
// The worker runs until ctx is cancelled.
func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	logger.Info("Habit catalog loaded", zap.Int("habits", catalog.Len()))

	if err := a.openStorage(ctx, cfg, logger); err != nil {
		a.Close()
		return nil, err
	}

	a.worker = workers.NewStreakWorker(logger)
	a.worker.Start(ctx)

	opts := services.Options{
		Latency: cfg.SimulatedLatency,
		Logger:  logger,
	}

	catalogSvc := services.NewCatalogService(ctx, catalog,
		repository.NewKVSelectionRepository(a.store, cfg.Namespace), opts)
	progressSvc := services.NewProgressService(ctx,
		repository.NewKVProgressRepository(a.store, cfg.Namespace), a.worker, opts)
	statsSvc := services.NewStatsService(catalog, progressSvc, a.worker, opts)

	a.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:    adapterHTTP.NewHabitHandler(catalogSvc, logger),
		ProgressHandler: adapterHTTP.NewProgressHandler(progressSvc, catalogSvc, logger),
		StatsHandler:    adapterHTTP.NewStatsHandler(statsSvc, catalogSvc, logger),
		Store:           a.store,
		Redis:           a.redis,
		Logger:          logger,
		StartTime:       time.Now(),
		RateLimit:       cfg.RateLimit,
		RateWindow:      cfg.RateWindow,
		Namespace:       cfg.Namespace,
	})

	return a, nil
}

func loadCatalog(path string) (*domain.Catalog, error) {
	if path == "" {
		return domain.DefaultCatalog(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	catalog, err := domain.LoadCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return catalog, nil
}

func (a *app) openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			if cfg.StorageBackend == config.BackendRedis {
				return err
			}
			logger.Warn("Redis unavailable, running without cache and rate limiting", zap.Error(err))
		} else {
			a.redis = rdb
			a.closers = append(a.closers, rdb.Close)
			logger.Info("Redis connected", zap.String("host", cfg.RedisHost))
		}
	}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		a.store = repository.NewInMemoryStore()

	case config.BackendSQLite:
		store, err := repository.NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, store.Close)
		a.store = store

	case config.BackendPostgres:
		db, err := sqlx.ConnectContext(ctx, cfg.DBDriver, cfg.PostgresDSN())
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		store := repository.NewPostgresStore(db)
		a.closers = append(a.closers, store.Close)
		if err := store.Migrate(ctx); err != nil {
			return err
		}

		a.store = store
		if a.redis != nil {
			a.store = repository.NewCachedStore(store, a.redis, cfg.CacheTTL, logger)
		}

	case config.BackendRedis:
		a.store = cache.NewRedisStore(a.redis)

	default:
		return fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	logger.Info("Storage ready",
		zap.String("backend", cfg.StorageBackend),
		zap.String("namespace", cfg.Namespace))
	return nil
}
