// Package tui is the terminal front end for the asteroids engine: a Bubble
// Tea program that maps keys to engine actions, steps the game on a timer
// and draws snapshots. The same model is served locally and over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of one frame.
type TickMsg time.Time

// tickCmd schedules the next frame one interval from now.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
