package scraper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/engine"
	"github.com/use-agent/vindecoder/engine/enginetest"
	"github.com/use-agent/vindecoder/models"
)

const lookupPage = `<html><body>
<table class="table table-hover">
  <tr><td>Make:</td><td>Toyota</td></tr>
  <tr><td>Mileage:</td><td><a href="http://x/report">12345 mi</a></td></tr>
</table>
</body></html>`

func fetchCfg() config.FetchConfig {
	return config.FetchConfig{
		Timeout:         30 * time.Second,
		WaitForSelector: "table.table-striped",
		LookupBaseURL:   "https://www.vindecoderz.com",
	}
}

func TestLookup_Success(t *testing.T) {
	eng := &enginetest.Engine{HTML: lookupPage}
	s := NewScraper(eng, fetchCfg())

	res, err := s.Lookup(context.Background(), "JT 123/4")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if res.VIN != "JT 123/4" {
		t.Errorf("VIN = %q", res.VIN)
	}
	if res.TargetURL != "https://www.vindecoderz.com/EN/check-lookup/JT%20123%2F4" {
		t.Errorf("TargetURL = %q", res.TargetURL)
	}
	if res.EngineUsed != "fake" {
		t.Errorf("EngineUsed = %q", res.EngineUsed)
	}

	want := map[string]string{"Make": "Toyota", "MileageReportURL": "http://x/report"}
	if diff := cmp.Diff(want, res.Data.Map()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}

	wantReq := []engine.FetchRequest{{
		URL:             res.TargetURL,
		WaitForSelector: "table.table-striped",
		Timeout:         30 * time.Second,
	}}
	if diff := cmp.Diff(wantReq, eng.Requests()); diff != "" {
		t.Errorf("fetch requests mismatch (-want +got):\n%s", diff)
	}

	stats := s.Stats()
	if stats.Total != 1 || stats.Failed != 0 || stats.InFlight != 0 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestLookup_FetchErrorPassesThrough(t *testing.T) {
	solverErr := models.NewSolverError("solver", 500, "boom", nil)
	s := NewScraper(&enginetest.Engine{Err: solverErr}, fetchCfg())

	res, err := s.Lookup(context.Background(), "VIN")
	if res != nil {
		t.Errorf("expected nil result, got %+v", res)
	}
	var se *models.SolverError
	if !errors.As(err, &se) || se != solverErr {
		t.Fatalf("expected the engine's *SolverError, got %T: %v", err, err)
	}
	if s.Stats().Failed != 1 {
		t.Errorf("Failed = %d, want 1", s.Stats().Failed)
	}
}

func TestLookup_ParseError(t *testing.T) {
	s := NewScraper(&enginetest.Engine{HTML: "<html><body>Just a moment...</body></html>"}, fetchCfg())

	_, err := s.Lookup(context.Background(), "VIN")

	var pe *models.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *models.ParseError, got %T: %v", err, err)
	}
}

func TestLookup_RejectsDotSegmentVIN(t *testing.T) {
	eng := &enginetest.Engine{HTML: lookupPage}
	s := NewScraper(eng, fetchCfg())

	for _, vin := range []string{"", ".", ".."} {
		_, err := s.Lookup(context.Background(), vin)
		var ie *models.InputError
		if !errors.As(err, &ie) {
			t.Errorf("Lookup(%q) error = %v, want *models.InputError", vin, err)
		}
	}
	if n := len(eng.Requests()); n != 0 {
		t.Errorf("engine saw %d requests, want 0", n)
	}
	if st := s.Stats(); st.Total != 0 || st.Failed != 0 {
		t.Errorf("Stats() = %+v, want no counted lookups", st)
	}
}

func TestClose(t *testing.T) {
	eng := &enginetest.Engine{}
	s := NewScraper(eng, fetchCfg())
	s.Close()
	if !eng.Closed() {
		t.Error("engine should be closed")
	}
}
