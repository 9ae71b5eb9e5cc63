package tts

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vanzic/Project-Rivo/types"
)

type fakeProvider struct {
	lastText string
	lastPath string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Synthesize(ctx context.Context, text, outputPath string) error {
	f.lastText = text
	f.lastPath = outputPath
	return nil
}

func TestGenerateAudio(t *testing.T) {
	provider := &fakeProvider{}
	dir := t.TempDir()
	g := NewGenerator(provider, dir)

	script := &types.Script{
		TrendKey: "Rust vs C++ in 2025",
		Score:    85,
		Hook:     "hook text",
		Context:  "context text",
		CoreInfo: "core text",
		Payoff:   "payoff text",
		CTA:      "cta text",
	}

	path, err := g.GenerateAudio(context.Background(), script)
	if err != nil {
		t.Fatalf("GenerateAudio: %v", err)
	}

	want := filepath.Join(dir, "rust_vs_c_in_2025_85.wav")
	if path != want {
		t.Errorf("audio path %q, want %q", path, want)
	}
	if provider.lastText != "hook text context text core text payoff text cta text" {
		t.Errorf("synthesized text %q", provider.lastText)
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	long := "this key is extremely long and will definitely exceed the fifty character budget"
	if got := sanitizeFilename(long); len(got) > 50 {
		t.Errorf("sanitized name %q longer than 50", got)
	}
}
