package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/handler"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/repository"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/scheduler"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/service"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/cache"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/config"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/database"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/jobs"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/storage"
)

// app owns the router and every resource that must be released on shutdown.
type app struct {
	router  *gin.Engine
	closers []func() error
	queue   *jobs.Queue
	logger  *zap.Logger
}

func newApp(ctx context.Context, cfg *config.Config, logr *zap.Logger) (_ *app, err error) {
	a := &app{logger: logr}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	if cfg.Reports.Enabled && !cfg.History.Enabled {
		return nil, errors.New("ENABLE_REPORTS requires ENABLE_RUN_HISTORY")
	}

	metrics := service.NewMetricsService()
	validate := validator.New()
	checks := map[string]handler.ReadinessCheck{}

	engineCfg, err := service.NewEngineConfig(cfg.Scheduler)
	if err != nil {
		return nil, err
	}
	engine, err := scheduler.NewEngine(engineCfg)
	if err != nil {
		return nil, err
	}

	var db *sqlx.DB
	if cfg.History.Enabled {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		checks["postgres"] = db.PingContext
		if cfg.Database.AutoMigrate {
			if err := database.RunMigrations(db.DB, logr); err != nil {
				return nil, err
			}
		}
	}

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		cacheRepo := repository.NewCacheRepository(client, logr)
		a.closers = append(a.closers, cacheRepo.Close)
		checks["redis"] = cacheRepo.Ping
		cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, true)
	}

	var (
		runRepo service.AnalysisRunRepository
		runSvc  *service.RunService
	)
	if db != nil {
		runRepo = repository.NewAnalysisRunRepository(db)
	}
	detection := service.NewDetectionService(engine, runRepo, cacheSvc, metrics, logr)
	resolution := service.NewResolutionService(engine, runRepo, validate, metrics, logr).WithCache(cacheSvc)
	if runRepo != nil {
		runSvc = service.NewRunService(runRepo, resolution, validate, metrics, logr).WithCache(cacheSvc)
	}
	analytics := service.NewAnalyticsService(runSvc, cacheSvc, engineCfg.Days, logr).WithCacheTTL(cfg.Analytics.CacheTTL)

	handlers := routeHandlers{
		detect:    handler.NewDetectHandler(detection, cfg.Upload.MaxFileSizeBytes),
		suggest:   handler.NewSuggestHandler(resolution),
		analytics: handler.NewAnalyticsHandler(analytics),
		metrics:   handler.NewMetricsHandler(metrics, checks),
	}
	if runSvc != nil {
		handlers.runs = handler.NewRunHandler(runSvc)
	}

	if cfg.Reports.Enabled {
		reports, err := a.startReports(ctx, cfg, db, runSvc, analytics, validate, metrics)
		if err != nil {
			return nil, err
		}
		handlers.reports = handler.NewReportHandler(reports)
	}

	a.router = newRouter(cfg, logr, metrics, handlers)
	return a, nil
}

func (a *app) startReports(ctx context.Context, cfg *config.Config, db *sqlx.DB, runs *service.RunService, analytics *service.AnalyticsService, validate *validator.Validate, metrics *service.MetricsService) (*service.ReportService, error) {
	if cfg.Reports.SignedURLSecret == "" {
		return nil, errors.New("REPORTS_SIGNED_URL_SECRET is required when reports are enabled")
	}
	store, err := storage.NewLocalStorage(cfg.Reports.StorageDir)
	if err != nil {
		return nil, err
	}
	signer := storage.NewSignedURLSigner(cfg.Reports.SignedURLSecret, cfg.Reports.SignedURLTTL)
	exporter := service.NewExportService(runs, analytics, store, signer, service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Reports.SignedURLTTL,
	}, a.logger)

	reportRepo := repository.NewReportRepository(db)
	reports := service.NewReportService(reportRepo, runs, nil, exporter, validate, metrics, a.logger, service.ReportServiceConfig{
		ResultTTL:       cfg.Reports.SignedURLTTL,
		CleanupInterval: cfg.Reports.CleanupInterval,
	})
	worker := service.NewReportWorker(reportRepo, exporter, metrics, a.logger)
	a.queue = jobs.NewQueue("reports", worker.Handle, jobs.QueueConfig{
		Workers:    cfg.Reports.WorkerConcurrency,
		MaxRetries: cfg.Reports.WorkerRetries,
		OnGiveUp:   reports.HandleGiveUp,
		Logger:     a.logger,
	})
	reports.SetQueue(a.queue)

	a.queue.Start(ctx)
	reports.RecoverPendingJobs(ctx)
	reports.StartCleanup(ctx)
	return reports, nil
}

// Close stops background workers and releases connections in reverse order.
func (a *app) Close() {
	if a.queue != nil {
		a.queue.Stop()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close resource", zap.Error(err))
		}
	}
	a.closers = nil
}
