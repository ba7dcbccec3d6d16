package engine

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/models"
)

// Engine is the interface that all fetch engines must implement.
type Engine interface {
	// Name returns the engine identifier ("solver", "http", "browser").
	Name() string

	// Fetch retrieves the rendered page for the given request.
	Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error)

	// Close releases engine resources (browser processes, idle connections).
	Close() error
}

// FetchRequest contains everything an engine needs to fetch a page.
type FetchRequest struct {
	URL             string
	WaitForSelector string
	Timeout         time.Duration
}

// FetchResult is the output of a successful engine fetch.
type FetchResult struct {
	HTML       string
	StatusCode int
	FinalURL   string
	EngineName string
}

// lookupPath is the lookup page path; the VIN is appended as one segment.
const lookupPath = "/EN/check-lookup/"

// TargetURL returns the lookup page URL for vin. The VIN is path-escaped so
// that characters such as '/', '?', '#' or '%' stay inside its segment.
func TargetURL(baseURL, vin string) string {
	return strings.TrimRight(baseURL, "/") + lookupPath + url.PathEscape(vin)
}

// CheckVIN rejects VINs that TargetURL cannot keep inside their own path
// segment: "." and ".." are dot segments that clients resolve away, and an
// empty VIN addresses the lookup index.
func CheckVIN(vin string) error {
	switch vin {
	case "":
		return models.NewInputError("vin is empty")
	case ".", "..":
		return models.NewInputError("vin %q is a path dot segment", vin)
	}
	return nil
}

// New builds the engine selected by cfg.Fetch.Engine.
func New(cfg *config.Config) (Engine, error) {
	switch cfg.Fetch.Engine {
	case config.EngineSolver:
		return NewSolverEngine(cfg.Solver.URL, cfg.Fetch.Timeout), nil
	case config.EngineHTTP:
		return NewHTTPEngine(), nil
	case config.EngineBrowser:
		return NewRodEngine(cfg.Browser)
	default:
		return nil, fmt.Errorf("engine: unknown engine %q (want %s, %s or %s)",
			cfg.Fetch.Engine, config.EngineSolver, config.EngineHTTP, config.EngineBrowser)
	}
}
