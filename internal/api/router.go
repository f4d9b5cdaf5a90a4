package api

import (
	"github.com/BerylCAtieno/socialsense/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the gin engine. The scrape and generate routes are also
// served under /api so existing web front-ends keep working.
func NewRouter(h *Handler, m *metrics.Collector, log *logrus.Entry, service string) *gin.Engine {
	router := gin.New()

	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(log))
	router.Use(RecoveryMiddleware(log))
	router.Use(CORSMiddleware())
	router.Use(m.Middleware())

	router.GET("/health", h.HandleHealth(service))
	router.GET("/metrics", m.Handler())

	router.POST("/scrape", h.HandleScrape)
	router.POST("/generate", h.HandleGenerate)

	apiGroup := router.Group("/api")
	apiGroup.POST("/scrape", h.HandleScrape)
	apiGroup.POST("/generate", h.HandleGenerate)

	return router
}
