package sample

import (
	"time"

	"github.com/olivier-w/waveview/internal/fault"
)

// Channel is one channel's samples together with the sampling rate and the
// value range of the format they were decoded from.
type Channel struct {
	Samples    []int
	SampleRate int
	Min        int
	Max        int
}

// Select projects channel index of raw. The returned samples share storage
// with raw.
func Select(raw *Raw, f Format, index int) (Channel, error) {
	if index < 0 || index >= f.Channels() || index >= raw.Channels() {
		return Channel{}, fault.Newf(fault.KindChannelIndex, "channel %d of %d", index, f.Channels())
	}
	lo, hi := f.ValueRange()
	return Channel{
		Samples:    raw.Channel(index),
		SampleRate: f.SampleRate(),
		Min:        lo,
		Max:        hi,
	}, nil
}

// Len returns the number of samples.
func (c Channel) Len() int { return len(c.Samples) }

// FullRange is Max - Min.
func (c Channel) FullRange() int { return c.Max - c.Min }

// Duration is the playing time of the samples.
func (c Channel) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(c.Samples)) / float64(c.SampleRate) * float64(time.Second))
}
