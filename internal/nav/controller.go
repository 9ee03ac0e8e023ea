// Package nav owns the viewport state and keeps the waveform and the view
// window consistent with it as pan and zoom commands arrive.
package nav

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/olivier-w/waveview/internal/fault"
	"github.com/olivier-w/waveview/internal/sample"
	"github.com/olivier-w/waveview/internal/view"
	"github.com/olivier-w/waveview/internal/waveform"
)

// State is the viewport. ScrollX is in waveform points and ScrollY in
// quantized levels; neither is clamped.
type State struct {
	TimeLevel  int
	ValueLevel int
	ScrollX    int
	ScrollY    int
	DrawWidth  int
	DrawHeight int
}

// Range is a closed numeric interval. Min > Max means nothing is visible.
type Range struct {
	Min float64
	Max float64
}

// Empty reports whether the range holds no values.
func (r Range) Empty() bool { return r.Min > r.Max }

// Scale returns the zoom multiplier of level: 1 + 0.1*level.
func Scale(level int) float64 { return float64(10+level) / 10 }

// scaled is floor(Scale(level) * base) in integer arithmetic.
func scaled(level, base int) int { return (10 + level) * base / 10 }

// rescale moves an offset from one zoom level to another, rounding halves
// away from zero.
func rescale(v, from, to int) int {
	return int(math.Round(float64(v) * float64(10+to) / float64(10+from)))
}

// Controller is the navigation state machine. It is not safe for concurrent
// use.
type Controller struct {
	channel sample.Channel
	state   State
	wave    *waveform.Waveform
	window  *view.Window

	timeRange  Range
	valueRange Range
}

// New builds the full-range view of ch for a width by height drawing area.
// Failures here are fatal to the caller: the initial view cannot be drawn.
func New(ch sample.Channel, width, height int) (*Controller, error) {
	c := &Controller{channel: ch}
	st := State{DrawWidth: width, DrawHeight: height}
	wave, win, err := c.build(st)
	if err != nil {
		return nil, err
	}
	c.commit(st, wave, win)
	return c, nil
}

func (c *Controller) build(st State) (*waveform.Waveform, *view.Window, error) {
	if st.DrawWidth < 1 || st.DrawHeight < 1 || st.DrawHeight%2 == 0 {
		return nil, nil, fault.Newf(fault.KindInvalidDimensions, "drawing area %dx%d", st.DrawWidth, st.DrawHeight)
	}
	wave, err := waveform.Build(c.channel, scaled(st.TimeLevel, st.DrawWidth), scaled(st.ValueLevel, st.DrawHeight))
	if err != nil {
		return nil, nil, err
	}
	win, err := view.NewWindow(wave.Samples(), st.DrawWidth, st.DrawHeight)
	if err != nil {
		return nil, nil, err
	}
	return wave, win, nil
}

func (c *Controller) commit(st State, wave *waveform.Waveform, win *view.Window) {
	c.state = st
	c.wave = wave
	c.window = win
	c.render()
}

func (c *Controller) render() {
	c.window.Render(c.state.ScrollX, c.state.ScrollY)

	lo, hi := c.window.VisibleIndexRange(c.state.ScrollX)
	step := float64(c.wave.DownSampleFactor()) / float64(c.channel.SampleRate)
	c.timeRange = Range{Min: float64(lo) * step, Max: float64(hi) * step}

	vlo, vhi := c.window.VisibleValueRange(c.state.ScrollY)
	q := c.wave.QuantizationFactor()
	c.valueRange = Range{Min: float64(vlo) * q, Max: float64(vhi) * q}
}

// Apply dispatches cmd.
func (c *Controller) Apply(cmd Command) Result {
	switch cmd.Op {
	case OpPan:
		return c.Pan(cmd.Dir)
	case OpZoomTime:
		return c.ZoomTime(cmd.Dir)
	case OpZoomValue:
		return c.ZoomValue(cmd.Dir)
	case OpReset:
		return c.Reset()
	case OpQuit:
		return Result{Quit: true}
	default:
		return refused(RefusalBadCommand, fmt.Sprintf("unknown command %v", cmd.Op))
	}
}

// Pan scrolls one step. Up raises the center level. Scrolling past the data
// is allowed and simply shows nothing.
func (c *Controller) Pan(d Direction) Result {
	switch d {
	case Left:
		c.state.ScrollX--
	case Right:
		c.state.ScrollX++
	case Up:
		c.state.ScrollY++
	case Down:
		c.state.ScrollY--
	default:
		return refused(RefusalBadCommand, fmt.Sprintf("cannot pan %v", d))
	}
	log.Debug("pan", "dir", d, "x", c.state.ScrollX, "y", c.state.ScrollY)
	c.render()
	return applied()
}

// ZoomTime moves one time level. Zooming in packs more raw samples into the
// same width; it is refused when there are not enough samples or, zooming
// out, when already at level 0.
func (c *Controller) ZoomTime(d Direction) Result {
	level, res, ok := c.nextLevel(c.state.TimeLevel, d, RefusalLowestTimeLevel, "lowest time level already")
	if !ok {
		return res
	}
	points := scaled(level, c.state.DrawWidth)
	if points > c.channel.Len() {
		msg := fmt.Sprintf("cannot zoom time further: %d points from %d samples", points, c.channel.Len())
		log.Warn(msg)
		return refused(RefusalNotEnoughSamples, msg)
	}

	next := c.state
	next.TimeLevel = level
	next.ScrollX = rescale(c.state.ScrollX, c.state.TimeLevel, level)
	return c.transition(next)
}

// ZoomValue moves one value level. There is no upper bound; zooming out is
// refused at level 0.
func (c *Controller) ZoomValue(d Direction) Result {
	level, res, ok := c.nextLevel(c.state.ValueLevel, d, RefusalLowestValueLevel, "lowest value level already")
	if !ok {
		return res
	}

	next := c.state
	next.ValueLevel = level
	next.ScrollY = rescale(c.state.ScrollY, c.state.ValueLevel, level)
	return c.transition(next)
}

func (c *Controller) nextLevel(level int, d Direction, lowest Refusal, lowestMsg string) (int, Result, bool) {
	switch d {
	case Up:
		return level + 1, Result{}, true
	case Down:
		if level == 0 {
			log.Warn(lowestMsg)
			return 0, refused(lowest, lowestMsg), false
		}
		return level - 1, Result{}, true
	default:
		return 0, refused(RefusalBadCommand, fmt.Sprintf("cannot zoom %v", d)), false
	}
}

func (c *Controller) transition(next State) Result {
	wave, win, err := c.build(next)
	if err != nil {
		log.Warn("rebuild refused", "err", err)
		return refused(RefusalRebuild, err.Error())
	}
	log.Debug("zoom", "time", next.TimeLevel, "value", next.ValueLevel, "points", wave.Points(), "levels", wave.Levels())
	c.commit(next, wave, win)
	return applied()
}

// Reset returns to the full-range view at the current drawing size.
func (c *Controller) Reset() Result {
	return c.transition(State{DrawWidth: c.state.DrawWidth, DrawHeight: c.state.DrawHeight})
}

// Resize rebuilds for a new drawing area at the current levels and offsets.
// On error the previous view is kept.
func (c *Controller) Resize(width, height int) error {
	if width == c.state.DrawWidth && height == c.state.DrawHeight {
		return nil
	}
	next := c.state
	next.DrawWidth = width
	next.DrawHeight = height
	wave, win, err := c.build(next)
	if err != nil {
		return err
	}
	c.commit(next, wave, win)
	return nil
}

// State returns the current viewport.
func (c *Controller) State() State { return c.state }

// Waveform returns the current waveform.
func (c *Controller) Waveform() *waveform.Waveform { return c.wave }

// Window returns the current view window.
func (c *Controller) Window() *view.Window { return c.window }

// Grid returns the rendered grid, row 0 on top.
func (c *Controller) Grid() [][]view.Cell { return c.window.Grid() }

// Channel returns the channel being viewed.
func (c *Controller) Channel() sample.Channel { return c.channel }

// TimeRange is the visible time span in seconds.
func (c *Controller) TimeRange() Range { return c.timeRange }

// ValueRange is the visible value span in raw sample units.
func (c *Controller) ValueRange() Range { return c.valueRange }

// IndexRange is the visible span of waveform points.
func (c *Controller) IndexRange() (int, int) {
	return c.window.VisibleIndexRange(c.state.ScrollX)
}
