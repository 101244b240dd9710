package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopchat/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API routes
	api := router.Group("/api")
	{
		// Marketplace resolver surface
		api.GET("/products", handler.SearchProducts)

		// Legacy static-catalog surface, kept separate from the resolver
		api.GET("/catalog", handler.SearchCatalog)

		// Chat surface (OPTIONS preflight is answered by the CORS middleware)
		api.POST("/chat", handler.Chat)
	}

	return router
}
