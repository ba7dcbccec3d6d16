package config

import (
	"os"
	"strconv"
	"time"
)

// Engine names accepted by FetchConfig.Engine.
const (
	EngineSolver  = "solver"
	EngineHTTP    = "http"
	EngineBrowser = "browser"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Fetch   FetchConfig
	Solver  SolverConfig
	Browser BrowserConfig
	Log     LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetchConfig controls how the lookup page is retrieved.
type FetchConfig struct {
	// Engine selects the fetch backend: "solver", "http" or "browser".
	Engine string // default: "solver"

	// Timeout bounds a single page fetch. For the solver engine it is
	// sent as maxTimeout.
	Timeout time.Duration // default: 60s

	// WaitForSelector is the element the renderer waits for before
	// returning the page.
	WaitForSelector string // default: "table.table-striped"

	// LookupBaseURL is the scheme and host of the lookup site.
	LookupBaseURL string // default: "https://www.vindecoderz.com"
}

// SolverConfig points at the FlareSolverr-compatible solver service.
type SolverConfig struct {
	URL string // default: "http://flaresolverr:8191/v1"
}

// BrowserConfig controls the local Rod browser used by the "browser" engine.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: false

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// BlockResources aborts image, font and media requests and anything
	// sent to known tracking hosts.
	BlockResources bool // default: true
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("VINDECODER_HOST", "0.0.0.0"),
			Port: envIntOr("VINDECODER_PORT", 8080),
			Mode: envOr("VINDECODER_MODE", "release"),
		},
		Fetch: FetchConfig{
			Engine:          envOr("VINDECODER_ENGINE", EngineSolver),
			Timeout:         envDurationOr("VINDECODER_TIMEOUT", 60*time.Second),
			WaitForSelector: envOr("VINDECODER_WAIT_SELECTOR", "table.table-striped"),
			LookupBaseURL:   envOr("VINDECODER_LOOKUP_BASE_URL", "https://www.vindecoderz.com"),
		},
		Solver: SolverConfig{
			URL: envOr("VINDECODER_SOLVER_URL", "http://flaresolverr:8191/v1"),
		},
		Browser: BrowserConfig{
			Headless:   envBoolOr("VINDECODER_HEADLESS", true),
			NoSandbox:  envBoolOr("VINDECODER_NO_SANDBOX", false),
			BrowserBin: os.Getenv("VINDECODER_BROWSER_BIN"),

			BlockResources: envBoolOr("VINDECODER_BLOCK_RESOURCES", true),
		},
		Log: LogConfig{
			Level:  envOr("VINDECODER_LOG_LEVEL", "info"),
			Format: envOr("VINDECODER_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
