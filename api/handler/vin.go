package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/vindecoder/models"
	"github.com/use-agent/vindecoder/scraper"
)

// DecodeVIN returns a handler for POST /vin.
//
// Orchestration flow:
//  1. Parse & validate request.
//  2. Scraper.Lookup → fetch via engine, extract tables.
//  3. Fill Timing, return 200 with the field mapping.
//
// Any failure is answered with a structured error and no partial data.
func DecodeVIN(sc *scraper.Scraper) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalStart := time.Now()

		// ── 1. Parse request ────────────────────────────────────────
		var req models.VinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, models.VinResponse{
				Status: models.StatusError,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}

		// ── 2. Lookup ───────────────────────────────────────────────
		result, err := sc.Lookup(c.Request.Context(), req.VIN)
		if err != nil {
			respondError(c, req.VIN, err)
			return
		}

		// ── 3. Respond ──────────────────────────────────────────────
		c.JSON(http.StatusOK, models.VinResponse{
			Status:     models.StatusOK,
			VIN:        req.VIN,
			Data:       result.Data,
			EngineUsed: result.EngineUsed,
			Timing: &models.TimingInfo{
				TotalMs:   time.Since(totalStart).Milliseconds(),
				FetchMs:   result.FetchMs,
				ExtractMs: result.ExtractMs,
			},
		})
	}
}

// respondError maps a lookup error to the correct HTTP status code and
// writes a structured JSON error response.
func respondError(c *gin.Context, vin string, err error) {
	status, detail := classifyError(err)
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		slog.Error("lookup failed", "vin", vin, "code", detail.Code, "error", err)
	}

	c.JSON(status, models.VinResponse{
		Status: models.StatusError,
		VIN:    vin,
		Error:  detail,
	})
}

// classifyError translates the error taxonomy to HTTP status codes:
// unusable VINs are the caller's (422), renderer failures are upstream
// problems (502), everything else, including unparseable pages, is ours
// (500).
func classifyError(err error) (int, *models.ErrorDetail) {
	var (
		solverErr   *models.SolverError
		protocolErr *models.SolverProtocolError
		parseErr    *models.ParseError
		inputErr    *models.InputError
	)
	switch {
	case errors.As(err, &inputErr):
		return http.StatusUnprocessableEntity, inputErr.ToDetail()
	case errors.As(err, &solverErr):
		return http.StatusBadGateway, solverErr.ToDetail()
	case errors.As(err, &protocolErr):
		return http.StatusBadGateway, protocolErr.ToDetail()
	case errors.As(err, &parseErr):
		return http.StatusInternalServerError, parseErr.ToDetail()
	default:
		return http.StatusInternalServerError, &models.ErrorDetail{
			Code:    models.ErrCodeInternal,
			Message: err.Error(),
		}
	}
}
