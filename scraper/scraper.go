package scraper

import (
	"log/slog"
	"sync/atomic"

	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/engine"
	"github.com/use-agent/vindecoder/models"
)

// Scraper runs VIN lookups against a fetch engine. It holds no per-request
// state and is safe for concurrent use.
type Scraper struct {
	engine   engine.Engine
	fetchCfg config.FetchConfig

	inFlight atomic.Int32
	total    atomic.Int64
	failed   atomic.Int64
}

// NewScraper creates a Scraper that fetches pages with eng.
func NewScraper(eng engine.Engine, fetchCfg config.FetchConfig) *Scraper {
	return &Scraper{
		engine:   eng,
		fetchCfg: fetchCfg,
	}
}

// Stats returns a snapshot of lookup counters.
func (s *Scraper) Stats() models.LookupStats {
	return models.LookupStats{
		Engine:   s.engine.Name(),
		InFlight: int(s.inFlight.Load()),
		Total:    s.total.Load(),
		Failed:   s.failed.Load(),
	}
}

// Close releases the engine. Call this on graceful shutdown so a local
// browser does not outlive the process.
func (s *Scraper) Close() {
	slog.Info("scraper shutting down", "engine", s.engine.Name())
	if err := s.engine.Close(); err != nil {
		slog.Warn("engine close failed", "engine", s.engine.Name(), "error", err)
	}
}
