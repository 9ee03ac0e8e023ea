package ui

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/harmonica"
)

// overview shows where the viewport sits within the whole file. The marker
// eases toward its target on a spring instead of jumping.
type overview struct {
	bar    progress.Model
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newOverview() overview {
	return overview{
		bar: progress.New(
			progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
			progress.WithoutPercentage(),
		),
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), 8.0, 1.0),
	}
}

func (o *overview) setWidth(w int) {
	if w < 1 {
		w = 1
	}
	o.bar.Width = w
}

// jump moves the marker without animation.
func (o *overview) jump(p float64) {
	o.pos, o.vel, o.target = p, 0, p
}

// setTarget reports whether the marker needs to move.
func (o *overview) setTarget(p float64) bool {
	o.target = p
	return !o.settled()
}

// step advances one frame and reports whether the marker is still moving.
func (o *overview) step() bool {
	o.pos, o.vel = o.spring.Update(o.pos, o.vel, o.target)
	if o.settled() {
		o.pos, o.vel = o.target, 0
		return false
	}
	return true
}

func (o overview) settled() bool {
	return math.Abs(o.pos-o.target) < 1e-3 && math.Abs(o.vel) < 1e-3
}

func (o overview) view() string {
	return o.bar.ViewAs(clamp01(o.pos))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
