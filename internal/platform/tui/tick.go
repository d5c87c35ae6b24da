// Package tui provides the Bubble Tea integration for Color Rush.
// It handles the terminal UI loop, input mapping, score persistence and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks, clamped to maxDT.
// The first tick (zero prev) yields one nominal frame at tickRate.
func frameDelta(prev, now time.Time, tickRate int, maxDT float64) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	nominal := 1.0 / float64(tickRate)
	if prev.IsZero() {
		if maxDT > 0 {
			return min(nominal, maxDT)
		}
		return nominal
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	if maxDT > 0 && dt > maxDT {
		return maxDT
	}
	return dt
}
