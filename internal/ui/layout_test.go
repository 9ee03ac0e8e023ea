package ui

import (
	"reflect"
	"testing"

	"github.com/olivier-w/waveview/internal/nav"
)

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		helpRows      int
		wantW, wantH  int
		fits          bool
	}{
		{"odd height kept", 80, 25, 1, 67, 19, true},
		{"even height lowered", 80, 24, 1, 67, 17, true},
		{"full help", 80, 24, 4, 67, 15, true},
		{"too narrow", axisWidth + 1, 24, 1, 0, 17, false},
		{"smallest", 80, 9, 1, 67, 3, true},
		{"too short", 80, 8, 1, 67, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := computeLayout(tt.width, tt.height, tt.helpRows)
			if l.waveWidth != tt.wantW || l.waveHeight != tt.wantH {
				t.Fatalf("wave = %dx%d, want %dx%d", l.waveWidth, l.waveHeight, tt.wantW, tt.wantH)
			}
			if l.fits() != tt.fits {
				t.Fatalf("fits() = %v, want %v", l.fits(), tt.fits)
			}
		})
	}
}

func TestValueLabels(t *testing.T) {
	got := valueLabels(nav.Range{Min: -10, Max: 10}, 5)
	want := []string{"10", "", "0", "", "-10"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("valueLabels() = %q, want %q", got, want)
	}
	if got := valueLabels(nav.Range{Min: 1, Max: 0}, 3); !reflect.DeepEqual(got, []string{"", "", ""}) {
		t.Fatalf("valueLabels(empty) = %q", got)
	}
}

func TestAxisCell(t *testing.T) {
	if got := axisCell("10", 12); got != "        10 ┤" {
		t.Fatalf("axisCell() = %q", got)
	}
	if got := axisCell("-2147483648000", 12); got != "-21474836… ┤" {
		t.Fatalf("axisCell(long) = %q", got)
	}
}

func TestTimeAxis(t *testing.T) {
	if got := timeAxis(nav.Range{Min: 0, Max: 9}, 20); got != "0.000s        9.000s" {
		t.Fatalf("timeAxis() = %q", got)
	}
	if got := timeAxis(nav.Range{Min: 1, Max: 0}, 20); got != "no samples in view" {
		t.Fatalf("timeAxis(empty) = %q", got)
	}
}

func TestOverviewSettles(t *testing.T) {
	o := newOverview()
	o.jump(0)
	if !o.setTarget(1) {
		t.Fatal("expected movement toward new target")
	}
	moving := true
	for i := 0; i < 1000 && moving; i++ {
		moving = o.step()
	}
	if moving || o.pos != 1 {
		t.Fatalf("pos = %v, moving = %v", o.pos, moving)
	}
	if o.setTarget(1) {
		t.Fatal("settled marker should not move")
	}
}
