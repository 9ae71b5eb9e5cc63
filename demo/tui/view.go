package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("🎬 Rivo Content Factory"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Per-trend progress
	if len(m.Order) > 0 {
		var rows strings.Builder
		for _, key := range m.Order {
			row := m.Rows[key]
			line := fmt.Sprintf("%-40s %s", truncate(row.Key, 40), stageLabel(row.Stage))
			if row.Err != nil {
				line = ErrorStyle.Render(line)
			}
			rows.WriteString(line)
			rows.WriteString("\n")
		}
		b.WriteString(BoxStyle.Render(strings.TrimRight(rows.String(), "\n")))
		b.WriteString("\n\n")
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, logMsg := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + logMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Help text
	if m.State == StateIdle {
		b.WriteString(InfoStyle.Render("Press 'r' to run | Press 'q' or Ctrl+C to quit"))
	} else if m.State != StateComplete {
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	} else {
		b.WriteString(HighlightStyle.Render("Press 'q' or Ctrl+C to exit"))
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
