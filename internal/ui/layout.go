package ui

const (
	axisWidth  = 12
	chromeRows = 4 // header, time axis, overview, status
)

// layout splits the terminal into the value axis column, the wave region
// and the rows below it. The last row and column stay free so the terminal
// never scrolls, and the wave height is odd so there is a center row.
type layout struct {
	width      int
	height     int
	waveWidth  int
	waveHeight int
}

func computeLayout(width, height, helpRows int) layout {
	l := layout{
		width:      width,
		height:     height,
		waveWidth:  width - axisWidth - 1,
		waveHeight: height - chromeRows - helpRows - 1,
	}
	if l.waveHeight%2 == 0 {
		l.waveHeight--
	}
	return l
}

// fits reports whether the wave region can hold a center row with one
// level above and below it.
func (l layout) fits() bool {
	return l.waveWidth >= 1 && l.waveHeight >= 3
}
