// Package tui provides the Bubble Tea integration for the snowfall platform.
// It handles the terminal UI loop, input mapping, and scene orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a scene simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. This is the only frame pacing in the system; scenes never
// sleep on their own.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 24
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
