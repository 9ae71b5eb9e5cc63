package presets

import "testing"

func TestForScore(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{95, "aggressive"},
		{40, "calm"},
		{70, "balanced"},
		{86, "aggressive"},
		{85, "balanced"},
		{50, "balanced"},
		{49, "calm"},
	}

	for _, c := range cases {
		if got := ForScore(c.score).Name; got != c.want {
			t.Errorf("ForScore(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestGetFallsBackToBalanced(t *testing.T) {
	if got := Get("nonexistent").Name; got != "balanced" {
		t.Errorf("Get(unknown) = %q, want balanced", got)
	}
	if got := Get("calm").Name; got != "calm" {
		t.Errorf("Get(calm) = %q", got)
	}
}

func TestRangeInvariants(t *testing.T) {
	for _, p := range []VisualPreset{Aggressive, Balanced, Calm} {
		if p.ZoomRange.Min < 1.0 {
			t.Errorf("%s: zoom min %.2f below identity", p.Name, p.ZoomRange.Min)
		}
		if p.ZoomRange.Max < p.ZoomRange.Min {
			t.Errorf("%s: inverted zoom range", p.Name)
		}
		if p.ZoomDecayRange.Min < 0 {
			t.Errorf("%s: negative zoom decay min", p.Name)
		}
		if p.ZoomDecayRange.Max < p.ZoomDecayRange.Min {
			t.Errorf("%s: inverted decay range", p.Name)
		}
		if p.JitterAmount < 0 {
			t.Errorf("%s: negative jitter", p.Name)
		}
		if p.WordLimit <= 0 {
			t.Errorf("%s: non-positive word limit", p.Name)
		}
	}
}
