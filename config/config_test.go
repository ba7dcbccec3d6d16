package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Fetch.Engine != EngineSolver {
		t.Errorf("Fetch.Engine = %q, want %q", cfg.Fetch.Engine, EngineSolver)
	}
	if cfg.Fetch.Timeout != 60*time.Second {
		t.Errorf("Fetch.Timeout = %s, want 60s", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.WaitForSelector != "table.table-striped" {
		t.Errorf("Fetch.WaitForSelector = %q", cfg.Fetch.WaitForSelector)
	}
	if cfg.Solver.URL != "http://flaresolverr:8191/v1" {
		t.Errorf("Solver.URL = %q", cfg.Solver.URL)
	}
	if !cfg.Browser.BlockResources {
		t.Error("Browser.BlockResources should default to true")
	}
	if !cfg.Browser.Headless {
		t.Error("Browser.Headless should default to true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VINDECODER_PORT", "9090")
	t.Setenv("VINDECODER_ENGINE", EngineBrowser)
	t.Setenv("VINDECODER_TIMEOUT", "15s")
	t.Setenv("VINDECODER_SOLVER_URL", "http://localhost:8191/v1")
	t.Setenv("VINDECODER_HEADLESS", "false")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Fetch.Engine != EngineBrowser {
		t.Errorf("Fetch.Engine = %q, want %q", cfg.Fetch.Engine, EngineBrowser)
	}
	if cfg.Fetch.Timeout != 15*time.Second {
		t.Errorf("Fetch.Timeout = %s, want 15s", cfg.Fetch.Timeout)
	}
	if cfg.Solver.URL != "http://localhost:8191/v1" {
		t.Errorf("Solver.URL = %q", cfg.Solver.URL)
	}
	if cfg.Browser.Headless {
		t.Error("Browser.Headless should be false")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("VINDECODER_PORT", "not-a-number")
	t.Setenv("VINDECODER_TIMEOUT", "soon")
	t.Setenv("VINDECODER_NO_SANDBOX", "maybe")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want fallback 8080", cfg.Server.Port)
	}
	if cfg.Fetch.Timeout != 60*time.Second {
		t.Errorf("Fetch.Timeout = %s, want fallback 60s", cfg.Fetch.Timeout)
	}
	if cfg.Browser.NoSandbox {
		t.Error("Browser.NoSandbox should fall back to false")
	}
}
