// Package tui is the Bubble Tea frontend for the brick games. It polls
// the keyboard, feeds commands into a session, calls Tick on every poll
// and draws the session snapshot.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent on every poll of the game loop.
type TickMsg time.Time

// tickCmd schedules the next poll after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
