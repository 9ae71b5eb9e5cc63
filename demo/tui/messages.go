package tui

import "github.com/vanzic/Project-Rivo/factory"

// ProgressMsg carries one factory event into the update loop
type ProgressMsg struct {
	Event factory.Event
}

// BatchDoneMsg is sent when the factory run returns
type BatchDoneMsg struct {
	Rendered int
	Err      error
}
