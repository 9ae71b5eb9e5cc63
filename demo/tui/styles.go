package tui

import "github.com/charmbracelet/lipgloss"

// Rivo palette: teal chrome, amber for the running state, soft white on
// teal for the banner moments.
var (
	colorAccent  = lipgloss.Color("#00B8A9")
	colorRunning = lipgloss.Color("#F6C90E")
	colorError   = lipgloss.Color("#E84545")
	colorMuted   = lipgloss.Color("#767676")
	colorBright  = lipgloss.Color("#F8F8F2")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginTop(1).
			MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(colorRunning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBright).
			Background(colorAccent).
			Padding(0, 1)
)
