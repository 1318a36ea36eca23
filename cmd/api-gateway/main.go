package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/acadsync/faculty-portal-api/api/swagger"
	"github.com/acadsync/faculty-portal-api/internal/handler"
	"github.com/acadsync/faculty-portal-api/internal/ingest"
	"github.com/acadsync/faculty-portal-api/internal/middleware"
	"github.com/acadsync/faculty-portal-api/internal/repository"
	"github.com/acadsync/faculty-portal-api/internal/service"
	"github.com/acadsync/faculty-portal-api/internal/store"
	"github.com/acadsync/faculty-portal-api/pkg/cache"
	"github.com/acadsync/faculty-portal-api/pkg/config"
	"github.com/acadsync/faculty-portal-api/pkg/database"
	"github.com/acadsync/faculty-portal-api/pkg/logger"
	corsmiddleware "github.com/acadsync/faculty-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/acadsync/faculty-portal-api/pkg/middleware/requestid"
)

// @title Faculty Portal API
// @version 1.0.0
// @description Faculty timetable ingestion, queries and period-swap workflow
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	timetableStore := store.New()
	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, query cache disabled", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	var audit service.AuditRecorder
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Warn("postgres unavailable, audit trail disabled", zap.Error(err))
		} else {
			audit = repository.NewAuditRepository(db)
			defer db.Close() //nolint:errcheck
		}
	}

	authSvc, err := service.NewAuthService(timetableStore, validate, logr, service.AuthConfig{
		AdminUsername: cfg.Admin.Username,
		AdminPassword: cfg.Admin.Password,
		Secret:        cfg.JWT.Secret,
		Expiration:    cfg.JWT.Expiration,
		Issuer:        cfg.JWT.Issuer,
	})
	if err != nil {
		logr.Fatal("failed to init auth service", zap.Error(err))
	}

	timetableSvc := service.NewTimetableService(timetableStore, cacheSvc, audit, metricsSvc, logr)
	swapSvc := service.NewSwapService(timetableStore, validate, logr, cacheSvc, audit, metricsSvc)

	if cfg.Sample.Enabled {
		if _, err := timetableSvc.Ingest(context.Background(), ingest.SampleDocument(), "startup"); err != nil {
			logr.Warn("failed to load sample timetable", zap.Error(err))
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Timetable: handler.NewTimetableHandler(timetableSvc),
		Faculty:   handler.NewFacultyHandler(timetableSvc),
		Swap:      handler.NewSwapHandler(swapSvc),
		Metrics:   metricsSvc,
		AuthSvc:   authSvc,
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
