package api

import (
	"github.com/Conceptual-Machines/retort-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/retort-api/internal/api/middleware"
	"github.com/Conceptual-Machines/retort-api/internal/config"
	"github.com/Conceptual-Machines/retort-api/internal/metrics"
	webhandlers "github.com/Conceptual-Machines/retort-api/internal/web/handlers"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	cfg *config.Config,
	generator handlers.RebuttalGenerator,
	recorder metrics.Recorder,
	version string,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(recorder))

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, cfg.Provider)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Web page
	webHandler := webhandlers.NewWebHandler(cfg)
	router.GET("/", webHandler.Home)

	api := router.Group("/api")
	{
		generationHandler := handlers.NewGenerationHandler(generator)
		api.POST("/generate", generationHandler.Generate)
		api.GET("/intensities", handlers.Intensities)
	}

	return router
}
