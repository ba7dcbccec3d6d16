// Package enginetest provides a scripted engine.Engine for tests.
package enginetest

import (
	"context"
	"sync"

	"github.com/use-agent/vindecoder/engine"
)

// Engine returns HTML or Err for every fetch and records the requests.
type Engine struct {
	HTML string
	Err  error

	mu       sync.Mutex
	requests []engine.FetchRequest
	closed   bool
}

func (e *Engine) Name() string { return "fake" }

func (e *Engine) Fetch(ctx context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
	e.mu.Lock()
	e.requests = append(e.requests, *req)
	e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.Err != nil {
		return nil, e.Err
	}
	return &engine.FetchResult{
		HTML:       e.HTML,
		StatusCode: 200,
		FinalURL:   req.URL,
		EngineName: e.Name(),
	}, nil
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

// Requests returns a copy of the fetch requests seen so far.
func (e *Engine) Requests() []engine.FetchRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]engine.FetchRequest(nil), e.requests...)
}

// Closed reports whether Close was called.
func (e *Engine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}
