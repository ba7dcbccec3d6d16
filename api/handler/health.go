package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/vindecoder/models"
	"github.com/use-agent/vindecoder/scraper"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Health returns a handler for GET /health.
func Health(sc *scraper.Scraper, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:  "healthy",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Lookups: sc.Stats(),
			Version: Version,
		})
	}
}
