package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/founder-scout/internal/api/middleware"
)

// SetupRoutes configures all REST API routes; metricsHandler may be nil
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, metricsHandler http.Handler) {
	// Health check and metrics (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	v1 := router.Group("/api/v1")
	{
		// Founder endpoints (public read access)
		v1.GET("/founders", handler.ListFounders)
		v1.GET("/founders/:id", handler.GetFounder)
		v1.GET("/stats", handler.GetOverview)

		// Outreach status changes (requires authentication)
		v1.PATCH("/founders/:id/status", middleware.Auth(authCfg), handler.UpdateFounderStatus)

		// Theme and event endpoints (public read access)
		v1.GET("/themes", handler.ListThemes)
		v1.GET("/themes/:id", handler.GetTheme)
		v1.GET("/events", handler.ListEvents)

		// Pipeline endpoints
		v1.GET("/pipeline/runs", handler.ListPipelineRuns)
		v1.POST("/pipeline/run", middleware.Auth(authCfg), handler.TriggerPipelineRun)
	}
}
