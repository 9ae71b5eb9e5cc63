package backgrounds

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vanzic/Project-Rivo/media"
)

// fakeBackend records loop generations and creates the asset file so disk
// presence checks behave like the real backend.
type fakeBackend struct {
	generated []string
}

func (f *fakeBackend) Probe(string) (float64, error)         { return 0, nil }
func (f *fakeBackend) RenderSegment(media.SegmentSpec) error { return nil }
func (f *fakeBackend) Concat([]string, string) error         { return nil }
func (f *fakeBackend) Mux(string, string, string) error      { return nil }

func (f *fakeBackend) GenerateLoop(filter string, seconds float64, outputPath string) error {
	f.generated = append(f.generated, outputPath)
	return os.WriteFile(outputPath, []byte("loop"), 0o644)
}

func TestGetGeneratesMissingAsset(t *testing.T) {
	backend := &fakeBackend{}
	m := NewManager(backend, t.TempDir())

	path, err := m.Get("curiosity")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if filepath.Base(path) != "curiosity.mp4" {
		t.Errorf("unexpected asset path %q", path)
	}
	if len(backend.generated) != 1 {
		t.Fatalf("expected one generation, got %d", len(backend.generated))
	}

	// Second call must hit the disk cache, not regenerate.
	if _, err := m.Get("curiosity"); err != nil {
		t.Fatalf("Get (cached): %v", err)
	}
	if len(backend.generated) != 1 {
		t.Errorf("asset regenerated despite existing on disk")
	}
}

func TestGetUnknownEmotionFallsBackToNeutral(t *testing.T) {
	m := NewManager(&fakeBackend{}, t.TempDir())

	path, err := m.Get("melancholy")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if filepath.Base(path) != "neutral.mp4" {
		t.Errorf("fallback path = %q, want neutral.mp4", path)
	}
}

func TestSelectReadabilityOverride(t *testing.T) {
	m := NewManager(&fakeBackend{}, t.TempDir())

	// tension is high motion: dense captions force neutral.
	path, err := m.Select("tension", 8)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if filepath.Base(path) != "neutral.mp4" {
		t.Errorf("dense caption over high motion: got %q, want neutral.mp4", path)
	}

	// Short captions keep the requested emotion.
	path, err = m.Select("tension", 3)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if filepath.Base(path) != "tension.mp4" {
		t.Errorf("short caption: got %q, want tension.mp4", path)
	}

	// Low-motion emotions are never overridden.
	path, err = m.Select("clarity", 9)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if filepath.Base(path) != "clarity.mp4" {
		t.Errorf("low motion: got %q, want clarity.mp4", path)
	}
}

func TestEnsureAll(t *testing.T) {
	backend := &fakeBackend{}
	m := NewManager(backend, t.TempDir())

	if err := m.EnsureAll(); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	if len(backend.generated) != len(Catalog) {
		t.Errorf("generated %d assets, want %d", len(backend.generated), len(Catalog))
	}
	for _, p := range backend.generated {
		if !strings.HasSuffix(p, ".mp4") {
			t.Errorf("asset %q missing extension", p)
		}
	}
}
