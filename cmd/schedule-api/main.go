package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campusbuild/schedule-builder-api/api/swagger"
	"github.com/campusbuild/schedule-builder-api/internal/catalog"
	"github.com/campusbuild/schedule-builder-api/internal/handler"
	"github.com/campusbuild/schedule-builder-api/internal/middleware"
	"github.com/campusbuild/schedule-builder-api/internal/repository"
	"github.com/campusbuild/schedule-builder-api/internal/service"
	"github.com/campusbuild/schedule-builder-api/pkg/cache"
	"github.com/campusbuild/schedule-builder-api/pkg/config"
	"github.com/campusbuild/schedule-builder-api/pkg/database"
	"github.com/campusbuild/schedule-builder-api/pkg/logger"
	"github.com/campusbuild/schedule-builder-api/pkg/middleware/cors"
	"github.com/campusbuild/schedule-builder-api/pkg/middleware/requestid"
	"github.com/campusbuild/schedule-builder-api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal("connect postgres", zap.Error(err))
	}
	defer db.Close()

	var resultCache repository.ResultCache
	if cfg.Redis.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, falling back to in-process cache", zap.Error(err))
			resultCache = repository.NewMemoryCache()
		} else {
			redisRepo := repository.NewCacheRepository(client, log)
			defer func() { _ = redisRepo.Close() }()
			resultCache = redisRepo
		}
	} else {
		resultCache = repository.NewMemoryCache()
	}

	validate := validator.New()
	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(resultCache, metrics, cfg.Schedules.ResultTTL, log)

	sectionRepo := repository.NewSectionRepository(db)
	jobStore := repository.NewRefreshJobStore()
	scraper := catalog.NewScraper(cfg.Catalog.BaseURL, cfg.Catalog.FetchTimeout, log)

	catalogSvc := service.NewCatalogService(sectionRepo, scraper, jobStore, cacheSvc, cfg.Catalog, log)
	ratingSvc := service.NewRatingService(cfg.Ratings, cacheSvc, log)
	scheduleSvc := service.NewScheduleService(sectionRepo, cacheSvc, ratingSvc, metrics, cfg.Schedules, validate, log)

	var archive *storage.ExportArchive
	if cfg.Export.ArchiveDir != "" {
		archive, err = storage.NewExportArchive(cfg.Export.ArchiveDir)
		if err != nil {
			log.Fatal("init export archive", zap.Error(err))
		}
		if deleted, err := archive.CleanupOlderThan(cfg.Export.ArchiveTTL); err != nil {
			log.Warn("export archive cleanup failed", zap.Error(err))
		} else if len(deleted) > 0 {
			log.Info("export archive cleaned", zap.Int("deleted", len(deleted)))
		}
	}
	exportSvc := newExportService(archive, validate, log)

	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, exportSvc, catalogSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	metricsHandler := handler.NewMetricsHandler(metrics, db)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(cors.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/schedules/generate", scheduleHandler.Generate)
		api.POST("/schedules/fingerprint", scheduleHandler.Fingerprint)
		api.GET("/schedules/:fingerprint", scheduleHandler.Lookup)
		api.POST("/schedules/export", scheduleHandler.Export)

		api.GET("/term", catalogHandler.Term)
		api.GET("/courses", catalogHandler.Courses)
		api.GET("/instructors", catalogHandler.Instructors)

		admin := api.Group("/catalog", middleware.AdminJWT(cfg.Admin.JWTSecret))
		{
			admin.POST("/refresh", catalogHandler.Refresh)
			admin.GET("/refresh/:id", catalogHandler.RefreshStatus)
		}
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalogSvc.Start(ctx)
	defer catalogSvc.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}

// newExportService keeps the archive interface nil when archiving is disabled,
// since a typed nil pointer would pass the service's nil check.
func newExportService(archive *storage.ExportArchive, validate *validator.Validate, log *zap.Logger) *service.ExportService {
	if archive == nil {
		return service.NewExportService(nil, nil, validate, log)
	}
	return service.NewExportService(nil, archive, validate, log)
}
