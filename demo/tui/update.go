package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case ProgressMsg:
		return m.handleProgress(msg)
	case BatchDoneMsg:
		return m.handleBatchDone(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r", "R":
		if m.State == StateIdle {
			m.State = StateRunning
			m.StartedAt = time.Now()
			m = m.AddLog("Factory started")
			return m, tea.Batch(
				runBatch(m.Run, m.Events),
				waitForEvent(m.Events),
			)
		}
	}
	return m, nil
}

// handleProgress folds a factory event into the trend rows
func (m Model) handleProgress(msg ProgressMsg) (tea.Model, tea.Cmd) {
	ev := msg.Event
	row, seen := m.Rows[ev.TrendKey]
	if !seen {
		row = &trendRow{Key: ev.TrendKey}
		m.Rows[ev.TrendKey] = row
		m.Order = append(m.Order, ev.TrendKey)
	}
	row.Stage = ev.Stage
	row.Detail = ev.Detail
	row.Err = ev.Err

	if ev.Err != nil {
		m = m.AddLog(fmt.Sprintf("%s: %v", ev.TrendKey, ev.Err))
	} else {
		m = m.AddLog(fmt.Sprintf("%s → %s", ev.TrendKey, stageLabel(ev.Stage)))
	}
	return m, waitForEvent(m.Events)
}

// handleBatchDone finishes the run
func (m Model) handleBatchDone(msg BatchDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Rendered = msg.Rendered
	m.State = StateComplete
	m = m.AddLog("Factory run complete")
	return m, nil
}
