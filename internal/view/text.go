package view

import "strings"

// Glyphs used by Lines.
const (
	MarkRune  = '*'
	BlankRune = ' '
)

// Lines converts a grid to one string per row.
func Lines(grid [][]Cell, mark, blank rune) []string {
	lines := make([]string, len(grid))
	var b strings.Builder
	for r, row := range grid {
		b.Reset()
		for _, c := range row {
			if c == Mark {
				b.WriteRune(mark)
			} else {
				b.WriteRune(blank)
			}
		}
		lines[r] = b.String()
	}
	return lines
}

// String renders the window with '*' marks.
func (w *Window) String() string {
	return strings.Join(Lines(w.cells, MarkRune, BlankRune), "\n")
}
