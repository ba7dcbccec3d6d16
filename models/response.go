package models

// Response status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// VinResponse is the response for POST /vin.
type VinResponse struct {
	// Status is "ok" on success and "error" otherwise.
	Status string `json:"status"`

	// VIN echoes the requested VIN.
	VIN string `json:"vin"`

	// Data holds the extracted fields in page order. Nil on failure.
	Data *ExtractionResult `json:"data,omitempty"`

	// EngineUsed names the fetch engine that produced the page.
	EngineUsed string `json:"engine_used,omitempty"`

	// Timing provides duration breakdowns for the operation.
	Timing *TimingInfo `json:"timing,omitempty"`

	// Error is populated only when Status is "error".
	Error *ErrorDetail `json:"error,omitempty"`
}

// ExtractResponse is the output for a page extracted without a lookup,
// where there is no VIN to echo.
type ExtractResponse struct {
	Status string            `json:"status"`
	Data   *ExtractionResult `json:"data"`
}

// LookupResult is what a single VIN lookup produces before it is shaped
// into an API response.
type LookupResult struct {
	VIN string

	// TargetURL is the lookup page that was requested.
	TargetURL string

	// Data holds the extracted fields.
	Data *ExtractionResult

	// EngineUsed names the fetch engine ("solver", "http", "browser").
	EngineUsed string

	// UpstreamStatus is the lookup site's HTTP status as reported by the
	// engine, 0 when unknown.
	UpstreamStatus int

	// FetchMs and ExtractMs break down where the time went.
	FetchMs   int64
	ExtractMs int64
}

// TimingInfo breaks down the time spent in each phase.
type TimingInfo struct {
	// TotalMs is the end-to-end duration in milliseconds.
	TotalMs int64 `json:"total_ms"`

	// FetchMs is the time spent waiting for the rendered page.
	FetchMs int64 `json:"fetch_ms"`

	// ExtractMs is the time spent parsing the tables.
	ExtractMs int64 `json:"extract_ms"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status  string      `json:"status"`
	Uptime  string      `json:"uptime"`
	Lookups LookupStats `json:"lookups"`
	Version string      `json:"version"`
}

// LookupStats reports the scraper's current state.
type LookupStats struct {
	Engine   string `json:"engine"`
	InFlight int    `json:"in_flight"`
	Total    int64  `json:"total"`
	Failed   int64  `json:"failed"`
}
