package util

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatDuration formats a duration as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatSeconds formats a time offset for an axis label. Sub-second offsets
// keep millisecond precision; longer ones use m:ss.mmm.
func FormatSeconds(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	if sec < 60 {
		return strconv.FormatFloat(sec, 'f', 3, 64) + "s"
	}
	m := int(sec / 60)
	return fmt.Sprintf("%d:%06.3f", m, sec-float64(m*60))
}

// FormatValue formats a sample value for an axis label, dropping the
// fraction when the value is whole.
func FormatValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
