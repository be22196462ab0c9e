// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/volttrack/backend/internal/integration/entrypoint/controller"
	"github.com/volttrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	recordController    *controller.RecordController
	analyticsController *controller.AnalyticsController
	insightController   *controller.InsightController
	backupController    *controller.BackupController
	settingsController  *controller.SettingsController
	rateLimiter         *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	recordController *controller.RecordController,
	analyticsController *controller.AnalyticsController,
	insightController *controller.InsightController,
	backupController *controller.BackupController,
	settingsController *controller.SettingsController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		recordController:    recordController,
		analyticsController: analyticsController,
		insightController:   insightController,
		backupController:    backupController,
		settingsController:  settingsController,
		rateLimiter:         rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	limited := r.rateLimiter
	if limited == nil {
		limited = middleware.NewRateLimiter()
	}

	if r.recordController != nil {
		records := v1.Group("/records")
		{
			records.GET("", r.recordController.List)
			records.POST("", r.recordController.Create)
			records.POST("/check-reading", r.recordController.CheckReading)
			records.GET("/:id", r.recordController.Get)
			records.PUT("/:id", r.recordController.Update)
			records.DELETE("/:id", r.recordController.Delete)
		}
	}

	if r.analyticsController != nil {
		analytics := v1.Group("/analytics")
		{
			analytics.GET("/summary", r.analyticsController.GetSummary)
			analytics.GET("/anomalies", r.analyticsController.GetAnomalies)
			analytics.GET("/intervals", r.analyticsController.GetIntervals)
			analytics.GET("/daily", r.analyticsController.GetDailyUsage)
			analytics.GET("/month", r.analyticsController.GetMonthView)
			analytics.GET("/chart", r.analyticsController.GetChartSeries)
		}
	}

	if r.insightController != nil {
		v1.POST("/insights", limited.Middleware(), r.insightController.Generate)
	}

	if r.backupController != nil {
		backup := v1.Group("/backup")
		{
			backup.POST("", r.backupController.Create)
			backup.GET("", r.backupController.Preview)
			backup.POST("/restore", limited.Middleware(), r.backupController.Restore)
			backup.GET("/export", r.backupController.Export)
			backup.POST("/import", r.backupController.Import)
		}
	}

	if r.settingsController != nil {
		settings := v1.Group("/settings")
		{
			settings.GET("", r.settingsController.Get)
			settings.PUT("", r.settingsController.Update)
		}
	}
}
