// Package assembler renders a blueprint against a finished audio track: it
// rescales estimated beat durations to the measured audio length, renders one
// segment per beat with background continuity across sustained runs, then
// concatenates and muxes everything into the final vertical clip.
package assembler

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vanzic/Project-Rivo/backgrounds"
	"github.com/vanzic/Project-Rivo/media"
	"github.com/vanzic/Project-Rivo/presets"
	"github.com/vanzic/Project-Rivo/types"
)

// MinSegmentDuration is one frame at 25fps; segments are floored here so
// rescaling can never produce a zero-length slice.
const MinSegmentDuration = 0.04

// Assembler owns the per-call rendering state. It is safe to reuse across
// calls because every Assemble builds fresh continuity state and a fresh
// temporary namespace.
type Assembler struct {
	backend   media.Backend
	bg        *backgrounds.Manager
	outputDir string
	tempDir   string
}

func New(backend media.Backend, bg *backgrounds.Manager, outputDir, tempDir string) *Assembler {
	return &Assembler{
		backend:   backend,
		bg:        bg,
		outputDir: outputDir,
		tempDir:   tempDir,
	}
}

// continuity tracks the background asset and its loop read offset across the
// beats of a single assembly call. Reusing the path while advancing the
// offset makes several beats read like one continuous background shot.
type continuity struct {
	path   string
	offset float64
}

// Assemble renders the blueprint against the audio at audioPath and returns
// the final video path. Any step failure aborts the whole assembly;
// intermediate segment files are removed on both success and failure.
func (a *Assembler) Assemble(audioPath string, bp *types.Blueprint) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file not found: %s: %w", audioPath, err)
	}
	if len(bp.Beats) == 0 {
		return "", fmt.Errorf("blueprint for %q has no beats", bp.TrendKey)
	}

	if err := os.MkdirAll(a.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := os.MkdirAll(a.tempDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	finalPath := filepath.Join(a.outputDir, base+".mp4")

	audioDuration, err := a.backend.Probe(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to probe audio duration: %w", err)
	}

	totalEstimated := bp.TotalEstimatedDuration()
	if totalEstimated == 0 {
		totalEstimated = 1
	}
	scale := audioDuration / totalEstimated

	// Per-call-unique namespace so concurrent assemblies of different
	// trends cannot collide on segment names.
	workDir, err := os.MkdirTemp(a.tempDir, types.SafeKey(bp.TrendKey)+"_")
	if err != nil {
		return "", fmt.Errorf("failed to create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	log.Printf("Generating visuals for %d beats (audio %.2fs, scale %.3f)", len(bp.Beats), audioDuration, scale)

	preset := presets.Get(bp.VisualStyle)
	state := continuity{}
	segments := make([]string, 0, len(bp.Beats))

	for i, beat := range bp.Beats {
		effective := beat.EstimatedDuration * scale
		if effective < MinSegmentDuration {
			effective = MinSegmentDuration
		}

		segPath := filepath.Join(workDir, fmt.Sprintf("beat_%03d.mp4", i))
		if err := a.renderBeat(beat, i, effective, preset, &state, segPath); err != nil {
			return "", fmt.Errorf("beat %d render failed: %w", i, err)
		}
		segments = append(segments, segPath)
	}

	visualsPath := filepath.Join(workDir, "visuals.mp4")
	if err := a.backend.Concat(segments, visualsPath); err != nil {
		return "", fmt.Errorf("segment concatenation failed: %w", err)
	}

	if err := a.backend.Mux(visualsPath, audioPath, finalPath); err != nil {
		return "", fmt.Errorf("final mux failed: %w", err)
	}

	log.Printf("Video saved to %s", finalPath)
	return finalPath, nil
}

// renderBeat composes one segment. A new background is chosen only at the
// first beat or on a pattern break; otherwise the previous background is
// sliced further along its loop.
func (a *Assembler) renderBeat(beat types.Beat, index int, duration float64, preset presets.VisualPreset, state *continuity, outPath string) error {
	if index == 0 || beat.PatternBreak || state.path == "" {
		wordCount := len(strings.Fields(beat.Text))
		path, err := a.bg.Select(beat.Emotion, wordCount)
		if err != nil {
			return err
		}
		state.path = path
		state.offset = 0
	}

	spec := media.SegmentSpec{
		BackgroundPath: state.path,
		Offset:         state.offset,
		Duration:       duration,
		OutputPath:     outPath,
	}
	state.offset += duration

	caption := beat.Caption
	if beat.CaptionLayout == "minimal" {
		caption = ""
	}
	if caption != "" {
		anim := animationFor(beat.Text, index, preset)
		spec.Caption = caption
		spec.FontSize, spec.XExpr, spec.YExpr = layoutFor(beat.CaptionLayout)
		spec.ZoomStart = anim.ZoomStart
		spec.ZoomDecay = anim.ZoomDecay
		spec.JitterX = anim.JitterX
		spec.JitterY = anim.JitterY
	}

	return a.backend.RenderSegment(spec)
}
