package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/engine"
	"github.com/use-agent/vindecoder/extractor"
	"github.com/use-agent/vindecoder/logging"
	"github.com/use-agent/vindecoder/models"
	"github.com/use-agent/vindecoder/scraper"
)

// Output formats accepted by the tools.
const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

func main() {
	cfg := config.Load()

	// stdout carries the MCP protocol.
	logging.Init(cfg.Log, os.Stderr)

	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine: %v\n", err)
		os.Exit(1)
	}
	sc := scraper.NewScraper(eng, cfg.Fetch)
	defer sc.Close()

	s := newServer(sc)

	if err := server.ServeStdio(s); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// lookuper is the part of the scraper the tools need.
type lookuper interface {
	Lookup(ctx context.Context, vin string) (*models.LookupResult, error)
}

func newServer(sc lookuper) *server.MCPServer {
	s := server.NewMCPServer(
		"vindecoder",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	decodeVINTool := mcp.NewTool("decode_vin",
		mcp.WithDescription("Look up a vehicle identification number (VIN) on vindecoderz.com and return the decoded vehicle fields (make, model, year, build sheet, ...)."),
		mcp.WithString("vin",
			mcp.Required(),
			mcp.Description("The VIN to decode"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'json' (default, field mapping) or 'markdown' (two-column table)"),
			mcp.Enum(formatJSON, formatMarkdown),
		),
	)
	s.AddTool(decodeVINTool, handleDecodeVIN(sc))

	extractPageTool := mcp.NewTool("extract_vin_page",
		mcp.WithDescription("Extract the vehicle fields from an already downloaded vindecoderz.com lookup page."),
		mcp.WithString("html",
			mcp.Required(),
			mcp.Description("Full HTML of the lookup page"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'json' (default) or 'markdown'"),
			mcp.Enum(formatJSON, formatMarkdown),
		),
	)
	s.AddTool(extractPageTool, handleExtractPage())

	return s
}

func handleDecodeVIN(sc lookuper) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		vin, err := request.RequireString("vin")
		if err != nil || vin == "" {
			return mcp.NewToolResultError("vin is required"), nil
		}
		format := request.GetString("format", formatJSON)

		result, err := sc.Lookup(ctx, vin)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("decode %s failed: %v", vin, err)), nil
		}

		return render(result.VIN, result.Data, format)
	}
}

func handleExtractPage() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		html, err := request.RequireString("html")
		if err != nil {
			return mcp.NewToolResultError("html is required"), nil
		}
		format := request.GetString("format", formatJSON)

		data, err := extractor.Extract(html)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("extraction failed: %v", err)), nil
		}

		return render("", data, format)
	}
}

func render(vin string, data *models.ExtractionResult, format string) (*mcp.CallToolResult, error) {
	if format == formatMarkdown {
		md, err := extractor.RenderMarkdown(data)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render markdown: %v", err)), nil
		}
		if vin != "" {
			md = fmt.Sprintf("# VIN %s\n\n%s", vin, md)
		}
		return mcp.NewToolResultText(md), nil
	}

	var body any = models.VinResponse{Status: models.StatusOK, VIN: vin, Data: data}
	if vin == "" {
		body = models.ExtractResponse{Status: models.StatusOK, Data: data}
	}
	out, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}
