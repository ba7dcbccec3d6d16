package engine

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/use-agent/vindecoder/models"
)

// solverCommandGet is the FlareSolverr command for a rendered GET.
const solverCommandGet = "request.get"

// solverGrace is added to maxTimeout for the HTTP call itself, since the
// solver may spend the whole maxTimeout before answering.
const solverGrace = 10 * time.Second

// SolverEngine fetches pages through a FlareSolverr-compatible solver
// service, which renders the page in its own browser and passes bot
// challenges before returning the HTML.
type SolverEngine struct {
	endpoint string
	client   *resty.Client
}

// solverRequest is the solver command payload.
type solverRequest struct {
	Cmd             string `json:"cmd"`
	URL             string `json:"url"`
	MaxTimeout      int64  `json:"maxTimeout"`
	WaitForSelector string `json:"waitForSelector,omitempty"`
}

// solverResponse is the subset of the solver reply we need.
type solverResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Solution *struct {
		URL      string  `json:"url"`
		Status   int     `json:"status"`
		Response *string `json:"response"`
	} `json:"solution"`
}

// NewSolverEngine creates a SolverEngine posting commands to endpoint.
// defaultTimeout bounds requests that do not carry their own timeout.
func NewSolverEngine(endpoint string, defaultTimeout time.Duration) *SolverEngine {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(defaultTimeout + solverGrace)

	return &SolverEngine{
		endpoint: endpoint,
		client:   client,
	}
}

func (e *SolverEngine) Name() string { return "solver" }

func (e *SolverEngine) Close() error {
	e.client.GetClient().CloseIdleConnections()
	return nil
}

func (e *SolverEngine) Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	payload := solverRequest{
		Cmd:             solverCommandGet,
		URL:             req.URL,
		MaxTimeout:      req.Timeout.Milliseconds(),
		WaitForSelector: req.WaitForSelector,
	}

	start := time.Now()
	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(e.endpoint)
	if err != nil {
		msg := "request failed"
		if errors.Is(err, context.DeadlineExceeded) {
			msg = "timed out"
		}
		return nil, models.NewSolverError(e.Name(), 0, msg, err)
	}

	slog.Debug("solver responded",
		"url", req.URL,
		"status", resp.StatusCode(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	var body solverResponse
	decodeErr := json.Unmarshal(resp.Body(), &body)

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		msg := resp.Status()
		if decodeErr == nil && body.Message != "" {
			msg = body.Message
		}
		return nil, models.NewSolverError(e.Name(), resp.StatusCode(), msg, nil)
	}

	if decodeErr != nil {
		return nil, models.NewSolverProtocolError("response is not JSON", decodeErr)
	}
	if body.Status == "error" {
		return nil, models.NewSolverError(e.Name(), resp.StatusCode(), body.Message, nil)
	}
	if body.Solution == nil {
		return nil, models.NewSolverProtocolError("missing solution", nil)
	}
	if body.Solution.Response == nil {
		return nil, models.NewSolverProtocolError("missing solution.response", nil)
	}

	finalURL := body.Solution.URL
	if finalURL == "" {
		finalURL = req.URL
	}

	return &FetchResult{
		HTML:       *body.Solution.Response,
		StatusCode: body.Solution.Status,
		FinalURL:   finalURL,
		EngineName: e.Name(),
	}, nil
}
