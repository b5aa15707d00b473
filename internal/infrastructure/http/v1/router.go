// Package v1 provides the HTTP API.
package v1

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/domain/reports"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/infrastructure/http/v1/handlers"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/infrastructure/http/v1/middleware"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Reports serves the three report operations
	Reports *reports.Service

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	// Health endpoints
	healthHandler := handlers.NewHealthHandler()
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
	}

	// Report endpoints
	api := router.Group("/api")
	{
		baseHandler := handlers.NewBaseHandler()
		reportsHandler := handlers.NewReportsHandler(baseHandler, cfg.Reports)
		reportsHandler.RegisterRoutes(api)
	}

	return router
}
