package main

import (
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/handler"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/middleware"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/service"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/config"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/logger"
	corsmiddleware "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/middleware/cors"
	reqidmiddleware "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/middleware/requestid"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/response"
)

// routeHandlers groups the HTTP handlers; runs and reports are nil when disabled.
type routeHandlers struct {
	detect    *handler.DetectHandler
	suggest   *handler.SuggestHandler
	analytics *handler.AnalyticsHandler
	runs      *handler.RunHandler
	reports   *handler.ReportHandler
	metrics   *handler.MetricsHandler
}

func newRouter(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h routeHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", h.metrics.Health)
	r.GET("/ready", h.metrics.Ready)
	r.GET("/metrics", h.metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	prefix := "/" + strings.Trim(cfg.APIPrefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	api := r.Group(prefix)
	api.Use(middleware.WithResponseMeta())

	api.POST("/detect/upload", h.detect.Upload)
	api.POST("/suggest/fix", middleware.BodyLimit(cfg.Upload.MaxFileSizeBytes), h.suggest.Fix)
	api.POST("/analytics/clashes", middleware.BodyLimit(cfg.Upload.MaxFileSizeBytes), h.analytics.Clashes)
	api.GET("/metrics/system", h.metrics.System)

	runs := api.Group("/runs")
	switch {
	case h.runs == nil:
		disabled := featureDisabled("run history")
		runs.Any("", disabled)
		runs.Any("/*path", disabled)
	default:
		runs.GET("", h.runs.List)
		runs.GET("/:id", h.runs.Get)
		runs.POST("/:id/resolve", h.runs.Resolve)
		runs.GET("/:id/analytics", h.analytics.Run)
		if h.reports != nil {
			runs.POST("/:id/reports", h.reports.Create)
		} else {
			runs.POST("/:id/reports", featureDisabled("reports"))
		}
	}

	if h.reports != nil {
		api.GET("/reports/download/:token", h.reports.Download)
		api.GET("/reports/:id", h.reports.Status)
	} else {
		api.Any("/reports/*path", featureDisabled("reports"))
	}

	return r
}

func featureDisabled(feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrFeatureDisabled, feature+" is disabled"))
	}
}
