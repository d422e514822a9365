// Package tui provides the Bubble Tea front end for Simon.
// It handles the terminal UI loop, input mapping and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrame caps how far one tick may move the game clock, so a suspended
// terminal does not replay a whole round in a single frame.
const maxFrame = 250 * time.Millisecond

// TickMsg is sent to advance the game clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time to advance for a tick at now.
func frameDelta(last, now time.Time) time.Duration {
	if last.IsZero() || !now.After(last) {
		return 0
	}
	d := now.Sub(last)
	if d > maxFrame {
		return maxFrame
	}
	return d
}
