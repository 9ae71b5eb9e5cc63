// Package factory runs the full content pipeline for the top trends:
// script, blueprint, audio, video, and optional archive/upload steps.
package factory

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/vanzic/Project-Rivo/types"
)

// Stage names reported through progress events.
const (
	StageScript    = "script"
	StageBlueprint = "blueprint"
	StageAudio     = "audio"
	StageVideo     = "video"
	StageArchive   = "archive"
	StageUpload    = "upload"
	StageDone      = "done"
	StageFailed    = "failed"
)

// Event is a progress notification for one trend moving through the pipeline.
type Event struct {
	TrendKey string
	Stage    string
	Detail   string
	Err      error
}

// TrendRanker supplies the trends to process; store.RedisStore satisfies it.
type TrendRanker interface {
	TopTrends(ctx context.Context, limit int) ([]types.TrendOutput, error)
}

// ScriptWriter turns a trend into a five-section script.
type ScriptWriter interface {
	Generate(trend *types.TrendOutput) *types.Script
}

// BlueprintGenerator turns a script into an edit blueprint.
type BlueprintGenerator interface {
	Generate(script *types.Script) *types.Blueprint
}

// AudioGenerator synthesizes narration for a script and returns the file path.
type AudioGenerator interface {
	GenerateAudio(ctx context.Context, script *types.Script) (string, error)
}

// VideoAssembler renders a final video from narration audio and a blueprint.
type VideoAssembler interface {
	Assemble(audioPath string, bp *types.Blueprint) (string, error)
}

// Archiver pushes finished artifacts to long-term storage.
type Archiver interface {
	ArchiveVideo(ctx context.Context, trendKey, videoPath string) (string, error)
	ArchiveBlueprint(ctx context.Context, trendKey, blueprintPath string) (string, error)
}

// Publisher uploads the finished video to a distribution platform.
type Publisher interface {
	Publish(trend *types.TrendOutput, videoPath string) (string, error)
}

// SaveBlueprint persists a blueprint and returns its path. Wired to
// blueprint.Save in production.
type SaveBlueprint func(bp *types.Blueprint, dir string) (string, error)

// Factory wires the pipeline stages together. Archiver and Publisher are
// optional; all other fields are required.
type Factory struct {
	Ranker       TrendRanker
	Scripts      ScriptWriter
	Blueprints   BlueprintGenerator
	Audio        AudioGenerator
	Video        VideoAssembler
	Archive      Archiver
	Publish      Publisher
	Save         SaveBlueprint
	BlueprintDir string

	// Notify, when set, receives progress events for each trend.
	Notify func(Event)
}

// Run processes up to limit trends. A failure on one trend is logged and
// does not stop the batch. Returns the number of successfully rendered
// videos.
func (f *Factory) Run(ctx context.Context, limit int) (int, error) {
	log.Printf("Starting content factory (limit: %d)...", limit)

	trendList, err := f.Ranker.TopTrends(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch top trends: %w", err)
	}
	if len(trendList) == 0 {
		log.Println("No trends found in the last 48 hours. Run the poller first!")
		return 0, nil
	}
	log.Printf("Found %d trends.", len(trendList))

	if err := os.MkdirAll(f.BlueprintDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create blueprint dir: %w", err)
	}

	succeeded := 0
	for i, trend := range trendList {
		log.Printf("[%d/%d] Processing trend: %s", i+1, len(trendList), trend.TrendKey)
		if err := f.ProcessTrend(ctx, &trend); err != nil {
			log.Printf("Failed to process trend %q: %v", trend.TrendKey, err)
			f.notify(Event{TrendKey: trend.TrendKey, Stage: StageFailed, Err: err})
			continue
		}
		succeeded++
	}

	log.Printf("Factory run complete: %d/%d succeeded.", succeeded, len(trendList))
	return succeeded, nil
}

// ProcessTrend runs the pipeline for a single trend.
func (f *Factory) ProcessTrend(ctx context.Context, trend *types.TrendOutput) error {
	log.Println("  -> Generating script...")
	script := f.Scripts.Generate(trend)
	f.notify(Event{TrendKey: trend.TrendKey, Stage: StageScript})

	log.Println("  -> Generating edit blueprint...")
	bp := f.Blueprints.Generate(script)
	bpPath, err := f.Save(bp, f.BlueprintDir)
	if err != nil {
		return fmt.Errorf("failed to save blueprint: %w", err)
	}
	log.Printf("     Saved blueprint to %s", bpPath)
	f.notify(Event{TrendKey: trend.TrendKey, Stage: StageBlueprint, Detail: bpPath})

	log.Println("  -> Generating audio...")
	audioPath, err := f.Audio.GenerateAudio(ctx, script)
	if err != nil {
		return fmt.Errorf("audio generation failed: %w", err)
	}
	log.Printf("     Saved audio to %s", audioPath)
	f.notify(Event{TrendKey: trend.TrendKey, Stage: StageAudio, Detail: audioPath})

	log.Println("  -> Assembling video...")
	videoPath, err := f.Video.Assemble(audioPath, bp)
	if err != nil {
		return fmt.Errorf("video assembly failed: %w", err)
	}
	log.Printf("     SUCCESS! Video saved to %s", videoPath)
	f.notify(Event{TrendKey: trend.TrendKey, Stage: StageVideo, Detail: videoPath})

	if f.Archive != nil {
		if _, err := f.Archive.ArchiveBlueprint(ctx, trend.TrendKey, bpPath); err != nil {
			log.Printf("Warning: blueprint archive failed for %q: %v", trend.TrendKey, err)
		}
		key, err := f.Archive.ArchiveVideo(ctx, trend.TrendKey, videoPath)
		if err != nil {
			log.Printf("Warning: video archive failed for %q: %v", trend.TrendKey, err)
		} else {
			f.notify(Event{TrendKey: trend.TrendKey, Stage: StageArchive, Detail: key})
		}
	}

	if f.Publish != nil {
		videoID, err := f.Publish.Publish(trend, videoPath)
		if err != nil {
			log.Printf("Warning: upload failed for %q: %v", trend.TrendKey, err)
		} else {
			f.notify(Event{TrendKey: trend.TrendKey, Stage: StageUpload, Detail: videoID})
		}
	}

	f.notify(Event{TrendKey: trend.TrendKey, Stage: StageDone, Detail: videoPath})
	return nil
}

func (f *Factory) notify(ev Event) {
	if f.Notify != nil {
		f.Notify(ev)
	}
}
