package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/engine/enginetest"
	"github.com/use-agent/vindecoder/scraper"
)

const lookupPage = `<table class="table-hover">
  <tr><td>Make:</td><td>Toyota</td></tr>
  <tr><td>Model:</td><td>Camry</td></tr>
</table>`

func newScraper(eng *enginetest.Engine) *scraper.Scraper {
	return scraper.NewScraper(eng, config.FetchConfig{
		Timeout:       time.Second,
		LookupBaseURL: "https://www.vindecoderz.com",
	})
}

func callTool(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", res.Content[0])
	}
	return text.Text
}

func TestDecodeVIN_JSON(t *testing.T) {
	h := handleDecodeVIN(newScraper(&enginetest.Engine{HTML: lookupPage}))

	res, err := h(context.Background(), callTool(map[string]any{"vin": "ABC"}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}

	var decoded struct {
		Status string            `json:"status"`
		VIN    string            `json:"vin"`
		Data   map[string]string `json:"data"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &decoded); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if decoded.Status != "ok" || decoded.VIN != "ABC" || decoded.Data["Model"] != "Camry" {
		t.Errorf("unexpected result: %+v", decoded)
	}
}

func TestDecodeVIN_Markdown(t *testing.T) {
	h := handleDecodeVIN(newScraper(&enginetest.Engine{HTML: lookupPage}))

	res, err := h(context.Background(), callTool(map[string]any{"vin": "ABC", "format": "markdown"}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	text := resultText(t, res)
	if !strings.HasPrefix(text, "# VIN ABC") || !strings.Contains(text, "Camry") {
		t.Errorf("unexpected markdown:\n%s", text)
	}
}

func TestDecodeVIN_Errors(t *testing.T) {
	h := handleDecodeVIN(newScraper(&enginetest.Engine{HTML: "<p>blocked</p>"}))

	res, _ := h(context.Background(), callTool(map[string]any{}))
	if !res.IsError {
		t.Error("missing vin should be a tool error")
	}

	res, _ = h(context.Background(), callTool(map[string]any{"vin": "ABC"}))
	if !res.IsError || !strings.Contains(resultText(t, res), "main table not found") {
		t.Errorf("expected parse failure, got %+v", res)
	}
}

func TestExtractPage(t *testing.T) {
	h := handleExtractPage()

	res, err := h(context.Background(), callTool(map[string]any{"html": lookupPage}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	text := resultText(t, res)
	if res.IsError || !strings.Contains(text, `"Make": "Toyota"`) {
		t.Errorf("unexpected result: %s", text)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if _, ok := decoded["vin"]; ok {
		t.Errorf("extracted page output carries a vin field: %s", text)
	}
}

func TestNewServer_RegistersTools(t *testing.T) {
	s := newServer(newScraper(&enginetest.Engine{HTML: lookupPage}))

	tools := s.ListTools()
	for _, name := range []string{"decode_vin", "extract_vin_page"} {
		if _, ok := tools[name]; !ok {
			t.Errorf("tool %q not registered", name)
		}
	}
	if len(tools) != 2 {
		t.Errorf("got %d tools, want 2", len(tools))
	}
}
