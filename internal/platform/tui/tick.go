// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// previewTickMsg drives the menu demo. It carries the owning menu's id so a
// menu ignores ticks scheduled by an earlier one.
type previewTickMsg struct {
	owner int64
}

func previewTickCmd(tickRate int, owner int64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(time.Time) tea.Msg {
		return previewTickMsg{owner: owner}
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
