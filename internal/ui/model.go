package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/olivier-w/waveview/internal/nav"
	"github.com/olivier-w/waveview/internal/sample"
	"github.com/olivier-w/waveview/internal/util"
	"github.com/olivier-w/waveview/internal/view"
)

// Options describes what is being viewed.
type Options struct {
	Title        string
	Format       sample.Format
	ChannelIndex int
}

// Model is the Bubbletea model for the waveform viewer.
type Model struct {
	channel sample.Channel
	opts    Options
	ctrl    *nav.Controller
	keys    keyMap
	help    help.Model
	layout  layout

	overview  overview
	animating bool

	width    int
	height   int
	quitting bool
	fatal    error

	status    string // transient status message
	statusErr bool
	statusSeq int
}

// New creates a viewer for ch. The navigation controller is built on the
// first window size message, once the drawing area is known.
func New(ch sample.Channel, opts Options) Model {
	return Model{
		channel:  ch,
		opts:     opts,
		keys:     defaultKeyMap(),
		help:     help.New(),
		overview: newOverview(),
	}
}

// Err returns the error that ended the viewer, if any.
func (m Model) Err() error {
	return m.fatal
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle(m.opts.Title))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.relayout()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m.relayout()
		}
		cmd, ok := m.keys.command(msg)
		if !ok {
			return m, nil
		}
		if m.ctrl == nil {
			if cmd.Op == nav.OpQuit {
				return m.quit()
			}
			return m, nil
		}
		res := m.ctrl.Apply(cmd)
		log.Debug("command", "op", cmd.Op, "dir", cmd.Dir, "applied", res.Applied)
		if res.Quit {
			return m.quit()
		}
		if !res.Applied {
			return m.setStatus(res.Message, true)
		}
		return m, m.animateOverview()

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case frameMsg:
		if m.overview.step() {
			return m, frameCmd()
		}
		m.animating = false
		return m, nil
	}

	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

// relayout recomputes the regions for the current terminal size and
// rebuilds the view to match. A failed initial build ends the program; a
// failed resize keeps the previous view.
func (m Model) relayout() (Model, tea.Cmd) {
	m.help.Width = m.width
	m.layout = computeLayout(m.width, m.height, lipgloss.Height(m.help.View(m.keys)))
	m.overview.setWidth(m.layout.waveWidth)
	if !m.layout.fits() {
		return m, nil
	}

	if m.ctrl == nil {
		ctrl, err := nav.New(m.channel, m.layout.waveWidth, m.layout.waveHeight)
		if err != nil {
			log.Error("initial view", "err", err)
			m.fatal = err
			return m.quit()
		}
		m.ctrl = ctrl
		m.overview.jump(m.position())
		return m, nil
	}

	if err := m.ctrl.Resize(m.layout.waveWidth, m.layout.waveHeight); err != nil {
		log.Warn("resize refused", "err", err)
		return m.setStatus("resize refused: "+err.Error(), true)
	}
	return m, m.animateOverview()
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return m, statusExpireCmd(m.statusSeq)
}

func (m *Model) animateOverview() tea.Cmd {
	if !m.overview.setTarget(m.position()) || m.animating {
		return nil
	}
	m.animating = true
	return frameCmd()
}

// position is the viewport center as a fraction of the waveform.
func (m Model) position() float64 {
	if m.ctrl == nil {
		return 0
	}
	points := m.ctrl.Waveform().Points()
	if points <= 1 {
		return 0
	}
	st := m.ctrl.State()
	center := st.ScrollX + st.DrawWidth/2
	return clamp01(float64(center) / float64(points-1))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.ctrl == nil || !m.layout.fits() {
		b.WriteString("\n")
		if m.width > 0 && !m.layout.fits() {
			b.WriteString(errorStyle.Render(fmt.Sprintf("terminal too small (%dx%d)", m.width, m.height)))
		} else {
			b.WriteString(statusStyle.Render("waiting for terminal size..."))
		}
		b.WriteString("\n")
		return b.String()
	}

	rows := view.Lines(m.ctrl.Grid(), view.MarkRune, view.BlankRune)
	labels := valueLabels(m.ctrl.ValueRange(), len(rows))
	for i, row := range rows {
		b.WriteString(axisStyle.Render(axisCell(labels[i], axisWidth)))
		b.WriteString(waveStyle.Render(row))
		b.WriteString("\n")
	}

	b.WriteString(spaces(axisWidth))
	b.WriteString(axisStyle.Render(timeAxis(m.ctrl.TimeRange(), m.layout.waveWidth)))
	b.WriteString("\n")

	b.WriteString(spaces(axisWidth))
	b.WriteString(m.overview.view())
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	s := headerStyle.Render("waveview")
	if m.opts.Title != "" {
		s += "  " + titleStyle.Render(m.opts.Title)
	}
	info := fmt.Sprintf("%v  ch %d  %s", m.opts.Format, m.opts.ChannelIndex, util.FormatDuration(m.channel.Duration()))
	return s + "  " + formatStyle.Render(info)
}

func (m Model) renderStatus() string {
	if m.status != "" {
		if m.statusErr {
			return errorStyle.Render(m.status)
		}
		return statusStyle.Render(m.status)
	}
	st := m.ctrl.State()
	return statusStyle.Render(fmt.Sprintf("time ×%.1f  value ×%.1f  offset %d,%d  %d points  %d levels",
		nav.Scale(st.TimeLevel), nav.Scale(st.ValueLevel), st.ScrollX, st.ScrollY,
		m.ctrl.Waveform().Points(), m.ctrl.Waveform().Levels()))
}

func windowTitle(title string) string {
	if title == "" {
		return "waveview"
	}
	return title + " — waveview"
}
