package debug

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestPeakResidentSet(t *testing.T) {
	rss, err := peakResidentSet()
	if err != nil {
		t.Skipf("resident set not available: %v", err)
	}
	if rss == 0 {
		t.Fatalf("expected a non-zero resident set")
	}
}

func TestLogMemStats_ReportsPeakResidentSet(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logMemStats(logger, 4096)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec["max_rss"] != float64(4096) {
		t.Fatalf("expected max_rss=4096, got %v", rec["max_rss"])
	}
	if _, ok := rec["rss"]; ok {
		t.Fatalf("current-rss key must not be logged: %v", rec)
	}
	if rec["heap_alloc"] == nil {
		t.Fatalf("heap figures missing: %v", rec)
	}
}
