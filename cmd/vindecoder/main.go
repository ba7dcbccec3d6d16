package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/use-agent/vindecoder/api"
	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/engine"
	"github.com/use-agent/vindecoder/logging"
	"github.com/use-agent/vindecoder/scraper"
)

func main() {
	// ── 1. Load configuration ───────────────────────────────────────
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	logging.Init(cfg.Log, os.Stdout)
	slog.Info("vindecoder starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"engine", cfg.Fetch.Engine,
		"timeout", cfg.Fetch.Timeout,
	)

	// ── 3. Initialise fetch engine ──────────────────────────────────
	eng, err := engine.New(cfg)
	if err != nil {
		slog.Error("failed to initialise engine", "error", err)
		os.Exit(1)
	}
	if cfg.Fetch.Engine == config.EngineSolver {
		slog.Info("using solver service", "url", cfg.Solver.URL)
	}

	sc := scraper.NewScraper(eng, cfg.Fetch)
	defer sc.Close()

	// ── 4. Setup router ─────────────────────────────────────────────
	router := api.NewRouter(sc, cfg, time.Now())

	// ── 5. Start HTTP server ────────────────────────────────────────
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// ── 6. Graceful shutdown ────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig.String())

	// In-flight lookups may be waiting on the solver; give them the
	// configured fetch timeout to finish.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Fetch.Timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
	} else {
		slog.Info("HTTP server drained gracefully")
	}

	// sc.Close() runs via defer and releases the engine.
	slog.Info("vindecoder stopped")
}
