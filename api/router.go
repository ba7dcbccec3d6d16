package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/vindecoder/api/handler"
	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/scraper"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
func NewRouter(sc *scraper.Scraper, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	r.GET("/health", handler.Health(sc, startTime))
	r.POST("/vin", handler.DecodeVIN(sc))

	return r
}
