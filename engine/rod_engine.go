package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/models"
	"github.com/ysmood/gson"
)

// RodEngine renders the lookup page in a local headless Chromium with
// stealth evasions, for deployments without a solver service. One browser
// is shared by all requests; every fetch gets its own tab.
type RodEngine struct {
	browser        *rod.Browser
	blockResources bool
}

// NewRodEngine launches the browser and connects to it.
func NewRodEngine(cfg config.BrowserConfig) (*RodEngine, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox)

	if cfg.BrowserBin != "" {
		l = l.Bin(cfg.BrowserBin)
	}

	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("rod_engine: launch browser: %w", err)
	}
	slog.Info("browser launched", "controlURL", controlURL)

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("rod_engine: connect to browser: %w", err)
	}

	return &RodEngine{browser: browser, blockResources: cfg.BlockResources}, nil
}

func (e *RodEngine) Name() string { return "browser" }

// Close kills the browser process.
func (e *RodEngine) Close() error {
	return e.browser.Close()
}

// Fetch opens a stealth tab, navigates to the lookup page, waits for
// req.WaitForSelector and returns the rendered HTML.
func (e *RodEngine) Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	page, err := stealth.Page(e.browser)
	if err != nil {
		return nil, models.NewSolverError(e.Name(), 0, "open page", err)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			slog.Warn("browser: failed to close page", "error", closeErr)
		}
	}()

	if e.blockResources {
		router := blockResources(page)
		defer func() {
			if stopErr := router.Stop(); stopErr != nil {
				slog.Debug("browser: failed to stop request router", "error", stopErr)
			}
		}()
	}

	headers := map[string]string{"Accept-Language": "en-US,en;q=0.9"}
	if u, parseErr := url.Parse(req.URL); parseErr == nil {
		headers["Referer"] = "https://www.google.com/search?q=" + url.QueryEscape(u.Hostname())
	}
	_ = proto.NetworkSetExtraHTTPHeaders{Headers: toHeadersMap(headers)}.Call(page)

	p := page.Context(ctx)

	if err := p.Navigate(req.URL); err != nil {
		return nil, models.NewSolverError(e.Name(), 0, "navigate", err)
	}
	if err := p.WaitLoad(); err != nil {
		return nil, models.NewSolverError(e.Name(), 0, "wait for load", err)
	}
	if req.WaitForSelector != "" {
		if _, err := p.Element(req.WaitForSelector); err != nil {
			return nil, models.NewSolverError(e.Name(), 0, fmt.Sprintf("wait for %q", req.WaitForSelector), err)
		}
	}

	html, err := p.HTML()
	if err != nil {
		return nil, models.NewSolverError(e.Name(), 0, "read page html", err)
	}

	finalURL := req.URL
	if info, infoErr := p.Info(); infoErr == nil && info.URL != "" {
		finalURL = info.URL
	}

	return &FetchResult{
		HTML:       html,
		FinalURL:   finalURL,
		EngineName: e.Name(),
	}, nil
}

// toHeadersMap converts a plain string map to the proto.NetworkHeaders type
// (map[string]gson.JSON) required by NetworkSetExtraHTTPHeaders.
func toHeadersMap(headers map[string]string) proto.NetworkHeaders {
	m := make(proto.NetworkHeaders, len(headers))
	for k, v := range headers {
		m[k] = gson.New(v)
	}
	return m
}
