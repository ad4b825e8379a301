package api

import (
	routes "polystat/internal/api/handlers"
	"polystat/internal/config"
	"polystat/internal/logger"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes all application routes
func SetupRouter(r *gin.Engine, cfg config.Config, log *logger.Logger) {
	r.Use(routes.RequestLogger(log))

	// Setup main handlers
	routes.SetupMainHandlers(r.Group(""), cfg)

	// API group
	api := r.Group("/api")

	// Setup polygon query handlers
	routes.SetupQueryHandlers(api, log)
}
