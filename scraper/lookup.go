package scraper

import (
	"context"
	"log/slog"
	"time"

	"github.com/use-agent/vindecoder/engine"
	"github.com/use-agent/vindecoder/extractor"
	"github.com/use-agent/vindecoder/models"
)

// fetchGrace is added to the fetch timeout for the request context, so the
// engine's own timeout fires first and reports a precise error.
const fetchGrace = 15 * time.Second

// Lookup fetches the lookup page for vin and extracts its fields.
//
// Flow:
//  1. Check the VIN and build the target URL (VIN path-escaped).
//  2. Engine fetch, bounded by the configured timeout.
//  3. Extract the main and build-sheet tables.
//
// Errors are the typed errors from models: *InputError from step 1,
// *SolverError and *SolverProtocolError from step 2, *ParseError from
// step 3.
func (s *Scraper) Lookup(ctx context.Context, vin string) (*models.LookupResult, error) {
	// ── 1. Target URL ───────────────────────────────────────────────
	if err := engine.CheckVIN(vin); err != nil {
		return nil, err
	}

	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	s.total.Add(1)

	targetURL := engine.TargetURL(s.fetchCfg.LookupBaseURL, vin)

	ctx, cancel := context.WithTimeout(ctx, s.fetchCfg.Timeout+fetchGrace)
	defer cancel()

	// ── 2. Fetch ────────────────────────────────────────────────────
	fetchStart := time.Now()
	page, err := s.engine.Fetch(ctx, &engine.FetchRequest{
		URL:             targetURL,
		WaitForSelector: s.fetchCfg.WaitForSelector,
		Timeout:         s.fetchCfg.Timeout,
	})
	fetchMs := time.Since(fetchStart).Milliseconds()
	if err != nil {
		s.failed.Add(1)
		slog.Warn("lookup fetch failed",
			"vin", vin,
			"engine", s.engine.Name(),
			"duration_ms", fetchMs,
			"error", err,
		)
		return nil, err
	}

	// ── 3. Extract ──────────────────────────────────────────────────
	extractStart := time.Now()
	data, err := extractor.Extract(page.HTML)
	extractMs := time.Since(extractStart).Milliseconds()
	if err != nil {
		s.failed.Add(1)
		slog.Warn("lookup extraction failed",
			"vin", vin,
			"engine", page.EngineName,
			"html_bytes", len(page.HTML),
			"error", err,
		)
		return nil, err
	}

	slog.Info("lookup completed",
		"vin", vin,
		"engine", page.EngineName,
		"fields", data.Len(),
		"fetch_ms", fetchMs,
		"extract_ms", extractMs,
	)

	return &models.LookupResult{
		VIN:            vin,
		TargetURL:      targetURL,
		Data:           data,
		EngineUsed:     page.EngineName,
		UpstreamStatus: page.StatusCode,
		FetchMs:        fetchMs,
		ExtractMs:      extractMs,
	}, nil
}
