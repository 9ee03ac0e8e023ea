// Package view rasterizes a quantized waveform into a fixed-size character
// grid.
//
// Samples live in sample coordinates: x is the index into the waveform and y
// is the quantized level. A window placed at (startX, startY) shows columns
// startX..startX+width-1 and levels startY-half..startY+half, where half is
// height/2.
//
// Inside the window, view coordinates put x=0 at the left edge and y=0 on
// the center row, with y growing upwards:
//
//	(0, 2)  (1, 2)  (2, 2)
//	(0, 1)  (1, 1)  (2, 1)
//	(0, 0)  (1, 0)  (2, 0)
//	(0,-1)  (1,-1)  (2,-1)
//	(0,-2)  (1,-2)  (2,-2)
//
// The grid is stored row-major with row 0 at the top, so view (x, y) lives at
// row half-y, column x.
package view

import (
	"github.com/charmbracelet/log"
	"github.com/olivier-w/waveview/internal/fault"
)

// Cell is one grid position.
type Cell uint8

const (
	Blank Cell = iota
	Mark
)

// Window owns a reusable grid of height rows by width columns.
type Window struct {
	samples []int
	width   int
	height  int
	half    int
	cells   [][]Cell
}

// NewWindow creates a window over samples. height must be odd so the center
// row exists.
func NewWindow(samples []int, width, height int) (*Window, error) {
	if width < 1 {
		return nil, fault.Newf(fault.KindInvalidDimensions, "width %d", width)
	}
	if height < 1 || height%2 == 0 {
		return nil, fault.Newf(fault.KindInvalidDimensions, "height %d should be a positive odd number", height)
	}
	log.Debug("create view", "width", width, "height", height)

	cells := make([][]Cell, height)
	for r := range cells {
		cells[r] = make([]Cell, width)
	}
	return &Window{
		samples: samples,
		width:   width,
		height:  height,
		half:    height / 2,
		cells:   cells,
	}, nil
}

// Render redraws the grid for a window whose left edge is sample startX and
// whose center row is level startY.
func (w *Window) Render(startX, startY int) {
	log.Debug("draw view", "x", startX, "y", startY)
	w.clear()
	for vx := 0; vx < w.width; vx++ {
		sx := vx + startX
		if sx < 0 {
			continue
		}
		// Sample indices only grow with vx.
		if sx >= len(w.samples) {
			break
		}
		vy := w.samples[sx] - startY
		if vy > w.half || vy < -w.half {
			continue
		}
		w.set(vx, vy, Mark)
	}
}

func (w *Window) clear() {
	for _, row := range w.cells {
		for c := range row {
			row[c] = Blank
		}
	}
}

func (w *Window) set(vx, vy int, c Cell) {
	row, col := w.toStorage(vx, vy)
	w.cells[row][col] = c
}

func (w *Window) toStorage(vx, vy int) (int, int) {
	return w.half - vy, vx
}

// At returns the cell at view coordinate (vx, vy).
func (w *Window) At(vx, vy int) Cell {
	row, col := w.toStorage(vx, vy)
	return w.cells[row][col]
}

// Grid returns the grid in storage order, row 0 on top. The rows are reused
// by the next Render.
func (w *Window) Grid() [][]Cell { return w.cells }

func (w *Window) Width() int      { return w.width }
func (w *Window) Height() int     { return w.height }
func (w *Window) HalfHeight() int { return w.half }

// VisibleValueRange returns the lowest and highest level shown when the
// center row is startY.
func (w *Window) VisibleValueRange(startY int) (int, int) {
	return startY - w.half, startY + w.half
}

// VisibleIndexRange returns the first and last sample index shown when the
// left edge is startX. The range is empty (first > last) when the window
// lies wholly outside the samples.
func (w *Window) VisibleIndexRange(startX int) (int, int) {
	return max(startX, 0), min(startX+w.width-1, len(w.samples)-1)
}

// Render is a one-shot helper returning a fresh grid.
func Render(samples []int, width, height, startX, startY int) ([][]Cell, error) {
	w, err := NewWindow(samples, width, height)
	if err != nil {
		return nil, err
	}
	w.Render(startX, startY)
	return w.Grid(), nil
}
