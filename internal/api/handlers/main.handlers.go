package routes

import (
	"net/http"

	"polystat/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServiceName is reported by the info endpoint
const ServiceName = "polystat"

// Version is overridden at build time with -ldflags
var Version = "dev"

// SetupMainHandlers registers the main application endpoints
func SetupMainHandlers(router *gin.RouterGroup, cfg config.Config) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": ServiceName,
			"version": Version,
			"port":    cfg.Port,
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
