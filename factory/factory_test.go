package factory

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vanzic/Project-Rivo/types"
)

type fakeRanker struct {
	trends []types.TrendOutput
	err    error
}

func (f *fakeRanker) TopTrends(_ context.Context, limit int) ([]types.TrendOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.trends) > limit {
		return f.trends[:limit], nil
	}
	return f.trends, nil
}

type fakeScripts struct{}

func (fakeScripts) Generate(trend *types.TrendOutput) *types.Script {
	return &types.Script{TrendKey: trend.TrendKey, Score: trend.Score, Hook: "hook"}
}

type fakeBlueprints struct{}

func (fakeBlueprints) Generate(script *types.Script) *types.Blueprint {
	return &types.Blueprint{TrendKey: script.TrendKey, VisualStyle: "balanced"}
}

type fakeAudio struct {
	failFor string
}

func (f *fakeAudio) GenerateAudio(_ context.Context, script *types.Script) (string, error) {
	if script.TrendKey == f.failFor {
		return "", errors.New("synthesis failed")
	}
	return filepath.Join("audio", script.TrendKey+".wav"), nil
}

type fakeVideo struct {
	assembled []string
}

func (f *fakeVideo) Assemble(audioPath string, bp *types.Blueprint) (string, error) {
	f.assembled = append(f.assembled, bp.TrendKey)
	return filepath.Join("videos", bp.TrendKey+".mp4"), nil
}

func fakeSave(bp *types.Blueprint, dir string) (string, error) {
	return filepath.Join(dir, bp.TrendKey+".json"), nil
}

func newFactory(t *testing.T, ranker *fakeRanker, audio *fakeAudio, video *fakeVideo) *Factory {
	t.Helper()
	return &Factory{
		Ranker:       ranker,
		Scripts:      fakeScripts{},
		Blueprints:   fakeBlueprints{},
		Audio:        audio,
		Video:        video,
		Save:         fakeSave,
		BlueprintDir: t.TempDir(),
	}
}

func TestRunProcessesAllTrends(t *testing.T) {
	ranker := &fakeRanker{trends: []types.TrendOutput{
		{TrendKey: "alpha", Score: 90},
		{TrendKey: "beta", Score: 60},
	}}
	video := &fakeVideo{}
	f := newFactory(t, ranker, &fakeAudio{}, video)

	var events []Event
	f.Notify = func(ev Event) { events = append(events, ev) }

	n, err := f.Run(context.Background(), 5)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 2 {
		t.Errorf("succeeded %d, want 2", n)
	}
	if len(video.assembled) != 2 {
		t.Errorf("assembled %d videos, want 2", len(video.assembled))
	}

	var doneCount int
	for _, ev := range events {
		if ev.Stage == StageDone {
			doneCount++
		}
	}
	if doneCount != 2 {
		t.Errorf("%d done events, want 2", doneCount)
	}
}

func TestRunContinuesPastFailures(t *testing.T) {
	ranker := &fakeRanker{trends: []types.TrendOutput{
		{TrendKey: "broken"},
		{TrendKey: "healthy"},
	}}
	video := &fakeVideo{}
	f := newFactory(t, ranker, &fakeAudio{failFor: "broken"}, video)

	var failed []string
	f.Notify = func(ev Event) {
		if ev.Stage == StageFailed {
			failed = append(failed, ev.TrendKey)
		}
	}

	n, err := f.Run(context.Background(), 5)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 1 {
		t.Errorf("succeeded %d, want 1", n)
	}
	if len(failed) != 1 || failed[0] != "broken" {
		t.Errorf("failed events %v", failed)
	}
	if len(video.assembled) != 1 || video.assembled[0] != "healthy" {
		t.Errorf("assembled %v", video.assembled)
	}
}

func TestRunRespectsLimit(t *testing.T) {
	ranker := &fakeRanker{trends: []types.TrendOutput{
		{TrendKey: "one"}, {TrendKey: "two"}, {TrendKey: "three"},
	}}
	video := &fakeVideo{}
	f := newFactory(t, ranker, &fakeAudio{}, video)

	n, err := f.Run(context.Background(), 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 2 {
		t.Errorf("succeeded %d, want 2", n)
	}
}

func TestRunEmptyStore(t *testing.T) {
	f := newFactory(t, &fakeRanker{}, &fakeAudio{}, &fakeVideo{})
	n, err := f.Run(context.Background(), 3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 0 {
		t.Errorf("succeeded %d, want 0", n)
	}
}

func TestRunRankerError(t *testing.T) {
	f := newFactory(t, &fakeRanker{err: errors.New("redis down")}, &fakeAudio{}, &fakeVideo{})
	if _, err := f.Run(context.Background(), 3); err == nil {
		t.Fatal("expected error when ranking fails")
	}
}
