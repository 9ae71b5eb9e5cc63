package scriptgen

import (
	"strings"
	"testing"

	"github.com/vanzic/Project-Rivo/types"
)

func sampleTrend() *types.TrendOutput {
	return &types.TrendOutput{
		TrendKey:     "quantum computing",
		Score:        72,
		Sources:      []string{"hackernews", "techcrunch", "wired", "verge"},
		SampleTitles: []string{"Quantum breakthrough announced", "Lab claims 1000 qubit chip"},
	}
}

func TestGenerateStructure(t *testing.T) {
	g := New(1)
	script := g.Generate(sampleTrend())

	if script.TrendKey != "quantum computing" {
		t.Errorf("trend key %q", script.TrendKey)
	}
	if script.Score != 72 {
		t.Errorf("score %d", script.Score)
	}
	for name, section := range map[string]string{
		"hook":      script.Hook,
		"context":   script.Context,
		"core_info": script.CoreInfo,
		"payoff":    script.Payoff,
		"cta":       script.CTA,
	} {
		if strings.TrimSpace(section) == "" {
			t.Errorf("empty %s section", name)
		}
	}
	if !strings.Contains(script.CoreInfo, "Quantum breakthrough announced") {
		t.Errorf("core info ignores first sample title: %q", script.CoreInfo)
	}
	if !strings.Contains(script.CoreInfo, "Lab claims 1000 qubit chip") {
		t.Errorf("core info ignores second sample title: %q", script.CoreInfo)
	}
}

func TestGenerateMeetsDurationFloor(t *testing.T) {
	g := New(2)
	// Bare trend forces the padding loop.
	script := g.Generate(&types.TrendOutput{TrendKey: "x"})
	if script.EstimatedDuration < 30 {
		t.Errorf("estimated duration %d below 30s floor", script.EstimatedDuration)
	}
}

func TestSourceListCappedAtThree(t *testing.T) {
	g := New(3)
	script := g.Generate(sampleTrend())
	if strings.Contains(script.Context, "verge") {
		t.Errorf("context used more than three sources: %q", script.Context)
	}
}

func TestGenerateWithoutTitles(t *testing.T) {
	g := New(4)
	script := g.Generate(&types.TrendOutput{TrendKey: "mystery topic"})
	if !strings.Contains(script.CoreInfo, "mystery topic") {
		t.Errorf("fallback core info should mention the trend key: %q", script.CoreInfo)
	}
	if !strings.Contains(script.Context, "the internet") {
		t.Errorf("fallback source list missing: %q", script.Context)
	}
}
