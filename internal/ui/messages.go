package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTTL = 5 * time.Second
	frameRate = 30
)

// statusExpiredMsg clears the status line if it still shows message seq.
type statusExpiredMsg struct{ seq int }

type frameMsg time.Time

func statusExpireCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
