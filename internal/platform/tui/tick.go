// Package tui hosts the racer in a terminal through Bubble Tea, locally or
// per SSH session. It maps keys, draws the canvas into coloured cells and
// turns the controller's scheduling requests into tick commands.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg delivers one scheduled controller invocation.
type frameMsg struct {
	run func()
}

// frameCmd returns a command that delivers run after one tick interval.
func frameCmd(tickRate int, run func()) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameMsg{run: run}
	})
}
