package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cadastral-lookup-api/internal/config"
	"cadastral-lookup-api/internal/middleware"
	"cadastral-lookup-api/internal/services"
)

// ServiceName identifies this service in health responses
const ServiceName = "cadastral-lookup-api"

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ParcelService services.ParcelService
	Policy        config.Policy
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	parcelHandler := NewParcelHandler(cfg.ParcelService, cfg.Policy)
	lookup := GinAdapter(parcelHandler.HandleLookup)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   ServiceName,
			"policy":    parcelHandler.Policy(),
			"mode":      config.GetDeploymentMode(),
			"timestamp": time.Now().UTC(),
		})
	})

	// The handler enforces its own method rules, so every verb is routed to it
	router.Any("/cadastral", lookup)
	v1 := router.Group("/api/v1")
	{
		v1.Any("/cadastral", lookup)
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())

	// Request ID and correlation ID
	router.Use(middleware.RequestID())
	router.Use(middleware.CorrelationID())

	// CORS
	router.Use(middleware.CORS())

	// Rate limiting
	router.Use(middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	// Structured logging
	router.Use(middleware.StructuredLogger())

	// Performance monitoring, upstream timeout is the natural slow threshold
	router.Use(middleware.PerformanceMonitor(cfg.Upstream.Timeout))

	// Error handling
	router.Use(middleware.ErrorHandler())
}
