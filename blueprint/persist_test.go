package blueprint

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestSaveWritesInspectableJSON(t *testing.T) {
	bp := NewGenerator().Generate(sampleScript())

	dir := t.TempDir()
	path, err := Save(bp, dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(path, "Test_Trend.json") {
		t.Errorf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	// The persisted form is the inspection contract: nested beats with
	// these exact field names.
	var raw struct {
		TrendKey    string                   `json:"trend_key"`
		VisualStyle string                   `json:"visual_style"`
		Beats       []map[string]interface{} `json:"beats"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw.TrendKey != "Test Trend" || raw.VisualStyle != "balanced" {
		t.Errorf("header fields: %+v", raw)
	}
	for _, field := range []string{
		"section", "text", "caption", "estimated_duration",
		"emotion", "visual_intent", "pattern_break", "caption_layout",
	} {
		if _, ok := raw.Beats[0][field]; !ok {
			t.Errorf("beat missing field %q", field)
		}
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Beats) != len(bp.Beats) {
		t.Errorf("round trip lost beats: %d != %d", len(loaded.Beats), len(bp.Beats))
	}
}
