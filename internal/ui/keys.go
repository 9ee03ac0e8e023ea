package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/waveview/internal/nav"
)

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	ZoomInTime   key.Binding
	ZoomOutTime  key.Binding
	ZoomInValue  key.Binding
	ZoomOutValue key.Binding
	Reset        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "earlier"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "later"),
		),
		ZoomInTime: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in time"),
		),
		ZoomOutTime: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out time"),
		),
		ZoomInValue: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "zoom in value"),
		),
		ZoomOutValue: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "zoom out value"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "0"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.ZoomInTime, k.ZoomOutTime, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ZoomInTime, k.ZoomOutTime, k.ZoomInValue, k.ZoomOutValue},
		{k.Reset, k.Help, k.Quit},
	}
}

// command maps a key press to a navigation command. ok is false for keys
// that are not navigation commands.
func (k keyMap) command(msg tea.KeyMsg) (cmd nav.Command, ok bool) {
	switch {
	case key.Matches(msg, k.Up):
		return nav.Command{Op: nav.OpPan, Dir: nav.Up}, true
	case key.Matches(msg, k.Down):
		return nav.Command{Op: nav.OpPan, Dir: nav.Down}, true
	case key.Matches(msg, k.Left):
		return nav.Command{Op: nav.OpPan, Dir: nav.Left}, true
	case key.Matches(msg, k.Right):
		return nav.Command{Op: nav.OpPan, Dir: nav.Right}, true
	case key.Matches(msg, k.ZoomInTime):
		return nav.Command{Op: nav.OpZoomTime, Dir: nav.Up}, true
	case key.Matches(msg, k.ZoomOutTime):
		return nav.Command{Op: nav.OpZoomTime, Dir: nav.Down}, true
	case key.Matches(msg, k.ZoomInValue):
		return nav.Command{Op: nav.OpZoomValue, Dir: nav.Up}, true
	case key.Matches(msg, k.ZoomOutValue):
		return nav.Command{Op: nav.OpZoomValue, Dir: nav.Down}, true
	case key.Matches(msg, k.Reset):
		return nav.Command{Op: nav.OpReset}, true
	case key.Matches(msg, k.Quit):
		return nav.Command{Op: nav.OpQuit}, true
	}
	return nav.Command{}, false
}
