package assembler

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vanzic/Project-Rivo/backgrounds"
	"github.com/vanzic/Project-Rivo/media"
	"github.com/vanzic/Project-Rivo/presets"
	"github.com/vanzic/Project-Rivo/types"
)

// fakeBackend records every call and materializes output files so disk-based
// state (asset caching, cleanup checks) behaves like the real engine.
type fakeBackend struct {
	probeDuration float64
	probeCalls    int

	segments     []media.SegmentSpec
	failAtBeat   int // -1 disables
	concatCalls  int
	muxCalls     int
	loopsCreated int
}

func newFakeBackend(duration float64) *fakeBackend {
	return &fakeBackend{probeDuration: duration, failAtBeat: -1}
}

func (f *fakeBackend) Probe(string) (float64, error) {
	f.probeCalls++
	return f.probeDuration, nil
}

func (f *fakeBackend) RenderSegment(spec media.SegmentSpec) error {
	if f.failAtBeat >= 0 && len(f.segments) == f.failAtBeat {
		return errors.New("simulated encoder failure")
	}
	f.segments = append(f.segments, spec)
	return os.WriteFile(spec.OutputPath, []byte("segment"), 0o644)
}

func (f *fakeBackend) Concat(segments []string, outputPath string) error {
	f.concatCalls++
	return os.WriteFile(outputPath, []byte("visuals"), 0o644)
}

func (f *fakeBackend) Mux(videoPath, audioPath, outputPath string) error {
	f.muxCalls++
	return os.WriteFile(outputPath, []byte("final"), 0o644)
}

func (f *fakeBackend) GenerateLoop(filter string, seconds float64, outputPath string) error {
	f.loopsCreated++
	return os.WriteFile(outputPath, []byte("loop"), 0o644)
}

type fixture struct {
	backend  *fakeBackend
	asm      *Assembler
	audio    string
	tempDir  string
	videoDir string
}

func newFixture(t *testing.T, audioDuration float64) *fixture {
	t.Helper()
	root := t.TempDir()
	backend := newFakeBackend(audioDuration)
	bg := backgrounds.NewManager(backend, filepath.Join(root, "assets"))

	audio := filepath.Join(root, "test_trend_70.wav")
	if err := os.WriteFile(audio, []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := &fixture{
		backend:  backend,
		audio:    audio,
		tempDir:  filepath.Join(root, ".temp"),
		videoDir: filepath.Join(root, "videos"),
	}
	f.asm = New(backend, bg, f.videoDir, f.tempDir)
	return f
}

func testBlueprint() *types.Blueprint {
	return &types.Blueprint{
		TrendKey:    "Test Trend",
		VisualStyle: "balanced",
		Beats: []types.Beat{
			{Section: "hook", Text: "Stop scrolling!", Caption: "STOP SCROLLING", EstimatedDuration: 1.0, Emotion: "curiosity", VisualIntent: "cut", PatternBreak: true, CaptionLayout: "top"},
			{Section: "hook", Text: "You need this.", Caption: "NEED", EstimatedDuration: 0.5, Emotion: "curiosity", VisualIntent: "sustain", CaptionLayout: "center"},
			{Section: "context", Text: "It is everywhere.", Caption: "EVERYWHERE", EstimatedDuration: 1.5, Emotion: "tension", VisualIntent: "zoom", PatternBreak: true, CaptionLayout: "bottom"},
			{Section: "cta", Text: "Follow now.", Caption: "", EstimatedDuration: 1.0, Emotion: "curiosity", VisualIntent: "text_overlay", PatternBreak: true, CaptionLayout: "minimal"},
		},
	}
}

func TestRescaleIdempotence(t *testing.T) {
	bp := testBlueprint()
	f := newFixture(t, bp.TotalEstimatedDuration()) // scale == 1.0

	if _, err := f.asm.Assemble(f.audio, bp); err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	for i, spec := range f.backend.segments {
		want := bp.Beats[i].EstimatedDuration
		if math.Abs(spec.Duration-want) > 1e-9 {
			t.Errorf("beat %d duration %.4f, want %.4f unchanged", i, spec.Duration, want)
		}
	}
}

func TestRescaleStretchesToAudio(t *testing.T) {
	bp := testBlueprint()
	f := newFixture(t, 2*bp.TotalEstimatedDuration())

	if _, err := f.asm.Assemble(f.audio, bp); err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	total := 0.0
	for _, spec := range f.backend.segments {
		total += spec.Duration
	}
	if math.Abs(total-2*bp.TotalEstimatedDuration()) > 1e-9 {
		t.Errorf("rescaled total %.4f, want %.4f", total, 2*bp.TotalEstimatedDuration())
	}
}

func TestMinSegmentDurationFloor(t *testing.T) {
	bp := testBlueprint()
	f := newFixture(t, 0.01) // absurdly short audio

	if _, err := f.asm.Assemble(f.audio, bp); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	for i, spec := range f.backend.segments {
		if spec.Duration < MinSegmentDuration {
			t.Errorf("beat %d duration %.4f below one-frame floor", i, spec.Duration)
		}
	}
}

func TestBackgroundContinuity(t *testing.T) {
	bp := testBlueprint()
	f := newFixture(t, bp.TotalEstimatedDuration())

	if _, err := f.asm.Assemble(f.audio, bp); err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	segs := f.backend.segments
	if len(segs) != 4 {
		t.Fatalf("got %d segments", len(segs))
	}

	// Beat 1 sustains beat 0's background: same asset, offset advanced by
	// beat 0's duration.
	if segs[1].BackgroundPath != segs[0].BackgroundPath {
		t.Errorf("sustained beat switched background: %q -> %q", segs[0].BackgroundPath, segs[1].BackgroundPath)
	}
	if segs[0].Offset != 0 {
		t.Errorf("first slice offset %.3f, want 0", segs[0].Offset)
	}
	if math.Abs(segs[1].Offset-segs[0].Duration) > 1e-9 {
		t.Errorf("sustained offset %.3f, want %.3f", segs[1].Offset, segs[0].Duration)
	}

	// Beats 2 and 3 are pattern breaks: fresh selection, offset reset.
	if segs[2].Offset != 0 || segs[3].Offset != 0 {
		t.Errorf("break offsets %.3f/%.3f, want 0/0", segs[2].Offset, segs[3].Offset)
	}
	if !strings.Contains(segs[2].BackgroundPath, "tension") {
		t.Errorf("break beat background %q, want tension asset", segs[2].BackgroundPath)
	}
}

func TestAnimationDeterminism(t *testing.T) {
	a := animationFor("some beat text", 3, presets.Aggressive)
	b := animationFor("some beat text", 3, presets.Aggressive)
	if a != b {
		t.Errorf("identical (text,index,preset) diverged: %+v vs %+v", a, b)
	}

	c := animationFor("some beat text", 4, presets.Aggressive)
	if a == c {
		t.Error("index change produced identical parameters")
	}

	if a.ZoomStart < presets.Aggressive.ZoomRange.Min || a.ZoomStart > presets.Aggressive.ZoomRange.Max {
		t.Errorf("zoom start %.3f outside preset range", a.ZoomStart)
	}
	if a.ZoomDecay < presets.Aggressive.ZoomDecayRange.Min || a.ZoomDecay > presets.Aggressive.ZoomDecayRange.Max {
		t.Errorf("zoom decay %.3f outside preset range", a.ZoomDecay)
	}
	j := presets.Aggressive.JitterAmount
	if a.JitterX < -j || a.JitterX > j || a.JitterY < -j || a.JitterY > j {
		t.Errorf("jitter (%d,%d) outside ±%d", a.JitterX, a.JitterY, j)
	}
}

func TestEmptyCaptionSkipsCaptionLayer(t *testing.T) {
	bp := testBlueprint()
	f := newFixture(t, bp.TotalEstimatedDuration())

	if _, err := f.asm.Assemble(f.audio, bp); err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	last := f.backend.segments[3] // minimal layout
	if last.Caption != "" {
		t.Errorf("minimal beat rendered caption %q", last.Caption)
	}
	if last.ZoomStart != 0 {
		t.Errorf("captionless beat carries animation params: %+v", last)
	}
}

func TestFinalPathDerivation(t *testing.T) {
	bp := testBlueprint()
	f := newFixture(t, bp.TotalEstimatedDuration())

	path, err := f.asm.Assemble(f.audio, bp)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := filepath.Join(f.videoDir, "test_trend_70.mp4")
	if path != want {
		t.Errorf("final path %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("final file missing: %v", err)
	}
}

func TestCleanupAfterSuccess(t *testing.T) {
	bp := testBlueprint()
	f := newFixture(t, bp.TotalEstimatedDuration())

	if _, err := f.asm.Assemble(f.audio, bp); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	assertNoLeftovers(t, f.tempDir)
}

func TestCleanupAfterFailure(t *testing.T) {
	bp := testBlueprint()
	f := newFixture(t, bp.TotalEstimatedDuration())
	f.backend.failAtBeat = 2

	_, err := f.asm.Assemble(f.audio, bp)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "beat 2") {
		t.Errorf("error %q does not identify the failing beat", err)
	}
	if f.backend.concatCalls != 0 || f.backend.muxCalls != 0 {
		t.Error("assembly continued past the failing beat")
	}
	assertNoLeftovers(t, f.tempDir)

	// No partial final file either.
	if _, statErr := os.Stat(filepath.Join(f.videoDir, "test_trend_70.mp4")); statErr == nil {
		t.Error("partial final video left behind")
	}
}

func TestMissingAudioFailsFast(t *testing.T) {
	bp := testBlueprint()
	f := newFixture(t, bp.TotalEstimatedDuration())

	_, err := f.asm.Assemble(filepath.Join(t.TempDir(), "nope.wav"), bp)
	if err == nil {
		t.Fatal("expected error for missing audio")
	}
	if f.backend.probeCalls != 0 {
		t.Error("probed before validating audio existence")
	}
	if len(f.backend.segments) != 0 {
		t.Error("rendered segments despite missing audio")
	}
}

func TestEmptyBlueprintRejected(t *testing.T) {
	f := newFixture(t, 10)
	_, err := f.asm.Assemble(f.audio, &types.Blueprint{TrendKey: "empty"})
	if err == nil {
		t.Fatal("expected error for empty blueprint")
	}
}

func assertNoLeftovers(t *testing.T, tempDir string) {
	t.Helper()
	err := filepath.WalkDir(tempDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return fmt.Errorf("leftover temp file %s", path)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		t.Errorf("temp dir not clean: %v", err)
	}
}
