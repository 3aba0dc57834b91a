package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitegen_server/internal/metrics"
)

// RegisterRoutes wires the API onto router. limiter may be nil.
func RegisterRoutes(router *gin.Engine, h *APIHandler, limiter *RateLimiter) {
	apiGroup := router.Group("/api")
	if limiter != nil {
		apiGroup.Use(limiter.Middleware())
	}
	{
		apiGroup.POST("/generate", h.GenerateSite) // prompt -> plan -> files
		apiGroup.POST("/export", h.ExportSite)     // files -> zip
		apiGroup.POST("/deploy", h.DeploySite)

		apiGroup.GET("/results/:id", h.GetResult)
		apiGroup.DELETE("/results/:id", h.DeleteResult)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())
}
