package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanzic/Project-Rivo/factory"
)

// runBatch starts the factory in the background and reports its result.
// The events channel is closed afterwards so waitForEvent can drain.
func runBatch(run RunBatch, events chan factory.Event) tea.Cmd {
	return func() tea.Msg {
		rendered, err := run(context.Background())
		close(events)
		return BatchDoneMsg{Rendered: rendered, Err: err}
	}
}

// waitForEvent blocks on the next factory progress event
func waitForEvent(events chan factory.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: ev}
	}
}
