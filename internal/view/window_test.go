package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/olivier-w/waveview/internal/fault"
)

func TestRenderFlatWaveMarksCenterRow(t *testing.T) {
	grid, err := Render(make([]int, 8), 8, 7, 0, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for r, row := range grid {
		for c, cell := range row {
			want := Blank
			if r == 3 {
				want = Mark
			}
			if cell != want {
				t.Fatalf("cell (%d, %d) = %v, want %v", r, c, cell, want)
			}
		}
	}
}

func TestRenderAscendingRamp(t *testing.T) {
	w, err := NewWindow([]int{-2, -1, 0, 1, 2}, 5, 5)
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	w.Render(0, 0)

	for vx, vy := range []int{-2, -1, 0, 1, 2} {
		if w.At(vx, vy) != Mark {
			t.Fatalf("At(%d, %d) = blank, want mark", vx, vy)
		}
	}
	want := strings.Join([]string{
		"    *",
		"   * ",
		"  *  ",
		" *   ",
		"*    ",
	}, "\n")
	if got := w.String(); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderDescendingRampStorageRows(t *testing.T) {
	// Falling values (2 down to -2) fill storage rows 0..4 left to right.
	grid, err := Render([]int{2, 1, 0, -1, -2}, 5, 5, 0, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for col, row := range []int{0, 1, 2, 3, 4} {
		if grid[row][col] != Mark {
			t.Fatalf("grid[%d][%d] = blank, want mark", row, col)
		}
	}
}

func TestRenderOffsets(t *testing.T) {
	samples := []int{0, 1, 2, 3, 4, 5}
	w, err := NewWindow(samples, 3, 3)
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}

	// Window over indices 2..4 centered on level 3: values 2,3,4 map to
	// view y -1,0,1.
	w.Render(2, 3)
	for vx, vy := range []int{-1, 0, 1} {
		if w.At(vx, vy) != Mark {
			t.Fatalf("At(%d, %d) = blank, want mark", vx, vy)
		}
	}

	// Scrolled left of the data: the first two columns stay blank.
	w.Render(-2, 0)
	if got := w.String(); got != "   \n  *\n   " {
		t.Fatalf("String() = %q", got)
	}

	// Scrolled past the end: nothing to draw.
	w.Render(10, 0)
	if got := w.String(); got != "   \n   \n   " {
		t.Fatalf("String() = %q", got)
	}
}

func TestRenderSkipsOffScreenLevels(t *testing.T) {
	// A level outside the table (e.g. full-scale rounding) fails the
	// visibility test instead of indexing out of the grid.
	grid, err := Render([]int{2, -2, 1}, 3, 3, 0, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	lines := Lines(grid, '#', '.')
	want := []string{"..#", "...", "..."}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	w, err := NewWindow([]int{0, 0, 0}, 3, 3)
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	w.Render(0, 0)
	w.Render(0, 5)
	for _, row := range w.Grid() {
		for _, c := range row {
			if c != Blank {
				t.Fatal("expected all cells blank after scrolling the wave off screen")
			}
		}
	}
}

func TestNewWindowRejectsBadDimensions(t *testing.T) {
	for _, tc := range []struct{ width, height int }{
		{5, 4},
		{5, 0},
		{0, 5},
		{-1, 3},
	} {
		if _, err := NewWindow(nil, tc.width, tc.height); !errors.Is(err, fault.ErrInvalidDimensions) {
			t.Fatalf("NewWindow(%d, %d) error = %v, want ErrInvalidDimensions", tc.width, tc.height, err)
		}
	}
}

func TestVisibleRanges(t *testing.T) {
	w, err := NewWindow(make([]int, 10), 4, 7)
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	if lo, hi := w.VisibleValueRange(2); lo != -1 || hi != 5 {
		t.Fatalf("VisibleValueRange(2) = (%d, %d), want (-1, 5)", lo, hi)
	}
	for _, tc := range []struct{ start, lo, hi int }{
		{0, 0, 3},
		{-2, 0, 1},
		{8, 8, 9},
	} {
		if lo, hi := w.VisibleIndexRange(tc.start); lo != tc.lo || hi != tc.hi {
			t.Fatalf("VisibleIndexRange(%d) = (%d, %d), want (%d, %d)", tc.start, lo, hi, tc.lo, tc.hi)
		}
	}
	if lo, hi := w.VisibleIndexRange(20); lo <= hi {
		t.Fatalf("VisibleIndexRange(20) = (%d, %d), want empty", lo, hi)
	}
}
