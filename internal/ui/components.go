package ui

import (
	"strings"

	"github.com/olivier-w/waveview/internal/nav"
	"github.com/olivier-w/waveview/internal/util"
)

// valueLabels returns one label per wave row: the top and bottom levels,
// and the center level when there is room for it.
func valueLabels(r nav.Range, rows int) []string {
	labels := make([]string, rows)
	if rows == 0 || r.Empty() {
		return labels
	}
	labels[0] = util.FormatValue(r.Max)
	labels[rows-1] = util.FormatValue(r.Min)
	if rows >= 5 {
		labels[rows/2] = util.FormatValue((r.Min + r.Max) / 2)
	}
	return labels
}

// axisCell right-aligns label in the axis column, ending with a tick.
func axisCell(label string, width int) string {
	room := width - 2
	if room < 1 {
		return spaces(width)
	}
	runes := []rune(label)
	if len(runes) > room {
		runes = append(runes[:room-1], '…')
	}
	return spaces(room-len(runes)) + string(runes) + " ┤"
}

func timeAxis(r nav.Range, width int) string {
	if r.Empty() {
		return "no samples in view"
	}
	left := util.FormatSeconds(r.Min)
	right := util.FormatSeconds(r.Max)
	gap := width - len(left) - len(right)
	if gap < 1 {
		return left
	}
	return left + spaces(gap) + right
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
