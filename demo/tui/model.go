// Package tui renders live factory progress in the terminal while a
// batch of trends moves through the content pipeline.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanzic/Project-Rivo/factory"
)

// State represents the demo state machine
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateComplete State = "complete"
	StateError    State = "error"
)

// RunBatch starts the factory and returns the number of rendered videos.
// Wired to factory.Factory.Run in production.
type RunBatch func(ctx context.Context) (int, error)

// trendRow tracks the latest stage of one trend in the batch.
type trendRow struct {
	Key    string
	Stage  string
	Detail string
	Err    error
}

// Model is the TUI state. Factory events arrive on Events and are
// folded into the per-trend rows.
type Model struct {
	Run    RunBatch
	Events chan factory.Event

	State     State
	Order     []string
	Rows      map[string]*trendRow
	Logs      []string
	Rendered  int
	Err       error
	StartedAt time.Time
}

// NewModel creates a demo model around a factory run function and the
// event channel its Notify hook feeds.
func NewModel(run RunBatch, events chan factory.Event) Model {
	return Model{
		Run:    run,
		Events: events,
		State:  StateIdle,
		Rows:   make(map[string]*trendRow),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// AddLog appends a log line, keeping the last eight.
func (m Model) AddLog(line string) Model {
	m.Logs = append(m.Logs, line)
	if len(m.Logs) > 8 {
		m.Logs = m.Logs[len(m.Logs)-8:]
	}
	return m
}

func (m Model) getStateText() string {
	switch m.State {
	case StateIdle:
		return HighlightStyle.Render("👋 Ready to render!") + "\n\n" +
			InfoStyle.Render("Press 'r' to run the factory")
	case StateRunning:
		return StatusStyle.Render(fmt.Sprintf("🏭 Factory running (%s)...", time.Since(m.StartedAt).Round(time.Second)))
	case StateComplete:
		return HighlightStyle.Render(fmt.Sprintf("✅ COMPLETE: %d video(s) rendered", m.Rendered))
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", errMsg))
	default:
		return ""
	}
}

func stageLabel(stage string) string {
	switch stage {
	case factory.StageScript:
		return "📝 script"
	case factory.StageBlueprint:
		return "📐 blueprint"
	case factory.StageAudio:
		return "🎙 audio"
	case factory.StageVideo:
		return "🎬 video"
	case factory.StageArchive:
		return "📦 archived"
	case factory.StageUpload:
		return "📤 uploaded"
	case factory.StageDone:
		return "✅ done"
	case factory.StageFailed:
		return "❌ failed"
	default:
		return stage
	}
}
