package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/waveview/internal/config"
	"github.com/olivier-w/waveview/internal/source"
	"github.com/olivier-w/waveview/internal/ui"
)

type startupPhase uint8

const (
	phaseBrowse startupPhase = iota
	phaseLoading
)

type startupResolvedMsg struct {
	model ui.Model
	err   error
}

type startupStatusMsg source.Status

type startupModel struct {
	cfg       *config.Config
	browser   ui.BrowserModel
	phase     startupPhase
	direct    bool // opened from the command line; load errors are fatal
	path      string
	err       error
	errMsg    string
	width     int
	height    int
	spinner   spinner.Model
	progress  progress.Model
	status    source.Status
	statusCh  chan source.Status
	hasStatus bool
}

// newStartupModel shows the file browser, or starts loading path right away
// when it is set.
func newStartupModel(cfg *config.Config, path string) startupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	p := progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)

	m := startupModel{
		cfg:      cfg,
		phase:    phaseBrowse,
		spinner:  s,
		progress: p,
	}
	if path != "" {
		m.direct = true
		m = m.beginLoading(path)
	} else {
		m.browser = ui.NewBrowser(".")
	}
	return m
}

func (m startupModel) beginLoading(path string) startupModel {
	m.phase = phaseLoading
	m.path = path
	m.errMsg = ""
	m.hasStatus = false
	m.status = source.Status{Phase: "reading", Percent: -1}
	m.statusCh = make(chan source.Status, 16)
	return m
}

func (m startupModel) loadCmds() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.waitForStatus(),
		openSelectionCmd(m.path, m.cfg, m.statusCh),
	)
}

// Err returns the error that ended the program before the viewer opened.
func (m startupModel) Err() error {
	return m.err
}

func (m startupModel) Init() tea.Cmd {
	if m.phase == phaseLoading {
		return m.loadCmds()
	}
	return tea.Batch(m.browser.Init(), m.spinner.Tick)
}

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 8
		if barWidth < 20 {
			barWidth = 20
		}
		if barWidth > 60 {
			barWidth = 60
		}
		m.progress.Width = barWidth
		if m.phase == phaseBrowse {
			return m.updateBrowser(msg)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.phase == phaseLoading {
			return m, cmd
		}
		return m, nil

	case ui.BrowserCancelledMsg:
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case ui.BrowserSelectedMsg:
		m = m.beginLoading(msg.Path)
		return m, m.loadCmds()

	case startupStatusMsg:
		m.hasStatus = true
		m.status = source.Status(msg)
		return m, m.waitForStatus()

	case startupResolvedMsg:
		m.statusCh = nil
		if msg.err != nil {
			if m.direct {
				m.err = msg.err
				return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
			}
			m.phase = phaseBrowse
			m.errMsg = msg.err.Error()
			m.hasStatus = false
			return m, nil
		}

		cmds := []tea.Cmd{msg.model.Init()}
		if m.width > 0 || m.height > 0 {
			w, h := m.width, m.height
			cmds = append(cmds, func() tea.Msg {
				return tea.WindowSizeMsg{Width: w, Height: h}
			})
		}
		return msg.model, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.phase == phaseLoading && startupIsQuit(msg) {
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	if m.phase == phaseBrowse {
		return m.updateBrowser(msg)
	}
	return m, nil
}

func (m startupModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.browser.Update(msg)
	if browser, ok := model.(ui.BrowserModel); ok {
		m.browser = browser
	}
	return m, cmd
}

func (m startupModel) waitForStatus() tea.Cmd {
	if m.statusCh == nil {
		return nil
	}
	statusCh := m.statusCh
	return func() tea.Msg {
		status, ok := <-statusCh
		if !ok {
			return nil
		}
		return startupStatusMsg(status)
	}
}

func (m startupModel) View() string {
	if m.phase == phaseBrowse {
		if m.browser.HasError() {
			return "\n  waveview\n\n  " + m.browser.Error().Error() + "\n"
		}
		if m.errMsg == "" {
			return m.browser.View()
		}
		return "\n  waveview\n\n  " + m.renderError() + "\n\n" + indentBlock(m.browser.View(), "  ")
	}

	return m.renderLoadingView()
}

func (m startupModel) renderLoadingView() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(startupHeaderStyle.Render("waveview"))
	b.WriteString("\n\n")

	label := "Reading..."
	if m.status.Phase == "decoding" {
		label = "Decoding..."
	}

	if m.hasStatus && m.status.Percent >= 0 {
		b.WriteString("  ")
		b.WriteString(startupStatusStyle.Render(label))
		b.WriteString("\n")
		b.WriteString("  ")
		b.WriteString(m.progress.ViewAs(m.status.Percent))
		b.WriteString(fmt.Sprintf("  %.0f%%\n", m.status.Percent*100))
	} else {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(startupStatusStyle.Render(label))
		b.WriteString("\n")
	}
	if m.path != "" {
		b.WriteString("  ")
		b.WriteString(startupHelpStyle.Render(m.path))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(startupHelpStyle.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m startupModel) renderError() string {
	return startupErrorStyle.Render(m.errMsg)
}

func openSelectionCmd(path string, cfg *config.Config, statusCh chan source.Status) tea.Cmd {
	return func() tea.Msg {
		defer close(statusCh)
		model, err := buildViewerModel(path, cfg, func(status source.Status) {
			select {
			case statusCh <- status:
			default:
			}
		})
		return startupResolvedMsg{model: model, err: err}
	}
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func startupIsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

var (
	startupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})
	startupStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})
	startupHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
	startupErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)
