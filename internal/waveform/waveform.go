// Package waveform reduces a channel to a fixed number of points and
// quantizes each point to a fixed odd number of levels.
//
// Down-sampling picks every f-th sample where f = total / points. For twelve
// samples and four points f is 3 and the picks are indices 0, 3, 6 and 9.
//
// Quantization splits the channel's full value range into levels-1 equal
// intervals. With five levels over -10..10 the factor is 20/4 = 5:
//
//	+10 ---- +2
//	 +5 ---- +1
//	  0 ----  0
//	 -5 ---- -1
//	-10 ---- -2
package waveform

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/olivier-w/waveview/internal/fault"
	"github.com/olivier-w/waveview/internal/sample"
)

// Waveform is an immutable down-sampled, quantized view of one channel.
type Waveform struct {
	samples         []int
	requestedLevels int
	levels          int
	downSample      int
	quantization    float64
}

// Build reduces ch to exactly points quantized samples over levels levels.
// An even levels is lowered by one so that zero sits on its own level.
func Build(ch sample.Channel, points, levels int) (*Waveform, error) {
	if points < 1 {
		return nil, fault.Newf(fault.KindInvalidDimensions, "requested %d points", points)
	}

	total := ch.Len()
	factor := total / points
	log.Debug("down-sample", "samples", total, "points", points, "factor", factor)
	if factor < 1 {
		return nil, fault.Newf(fault.KindInsufficientSamples, "%d points requested from %d samples", points, total)
	}

	effective, adjusted := EffectiveLevels(levels)
	if adjusted {
		log.Warn("number of levels set to an odd number", "requested", levels, "levels", effective)
	}
	intervals := effective - 1
	if intervals <= 0 {
		return nil, fault.Newf(fault.KindInvalidLevels, "%d levels leaves %d intervals", effective, intervals)
	}
	q := float64(ch.FullRange()) / float64(intervals)
	log.Debug("quantization", "range", ch.FullRange(), "intervals", intervals, "factor", q)

	picked, err := downSample(ch.Samples, factor, points)
	if err != nil {
		return nil, err
	}
	for i, v := range picked {
		picked[i] = Quantize(v, q)
	}

	return &Waveform{
		samples:         picked,
		requestedLevels: levels,
		levels:          effective,
		downSample:      factor,
		quantization:    q,
	}, nil
}

// downSample picks samples at 0, factor, 2*factor, ... and returns a new
// slice of exactly points values. At most points+1 candidates are taken; a
// single trailing extra is dropped.
func downSample(samples []int, factor, points int) ([]int, error) {
	picked := make([]int, 0, points+1)
	for i := 0; i < len(samples) && len(picked) <= points; i += factor {
		picked = append(picked, samples[i])
	}
	if len(picked) == points+1 {
		picked = picked[:points]
	}
	if len(picked) != points {
		return nil, fault.Newf(fault.KindInvariant, "down-sampled to %d points, want %d", len(picked), points)
	}
	return picked, nil
}

// EffectiveLevels lowers an even level count to the next odd number and
// reports whether it did.
func EffectiveLevels(requested int) (int, bool) {
	if requested%2 == 0 {
		return requested - 1, true
	}
	return requested, false
}

// Quantize maps v to its level under factor, rounding halves away from zero.
func Quantize(v int, factor float64) int {
	add := 0.5
	if v <= 0 {
		add = -0.5
	}
	return int(math.Trunc(float64(v)/factor + add))
}

// Samples returns the quantized points. The slice must not be modified.
func (w *Waveform) Samples() []int { return w.samples }

// Points is len(Samples()).
func (w *Waveform) Points() int { return len(w.samples) }

// Levels is the effective (odd) number of levels.
func (w *Waveform) Levels() int { return w.levels }

// RequestedLevels is the level count passed to Build.
func (w *Waveform) RequestedLevels() int { return w.requestedLevels }

// LevelsAdjusted reports whether Build lowered an even level count.
func (w *Waveform) LevelsAdjusted() bool { return w.levels != w.requestedLevels }

// DownSampleFactor is the stride between picked samples.
func (w *Waveform) DownSampleFactor() int { return w.downSample }

// QuantizationFactor is the value span of one level.
func (w *Waveform) QuantizationFactor() float64 { return w.quantization }
