// Package sample decodes interleaved integer sample buffers into per-channel
// sequences and projects a single channel for the waveform transform.
package sample

import (
	"github.com/charmbracelet/log"
	"github.com/olivier-w/waveview/internal/fault"
)

// Raw holds every channel of a decoded buffer. All channels have the same
// length and are never modified after Decode returns.
type Raw struct {
	channels [][]int
}

// Channels returns the number of channels.
func (r *Raw) Channels() int { return len(r.channels) }

// Len returns the number of sample groups.
func (r *Raw) Len() int {
	if len(r.channels) == 0 {
		return 0
	}
	return len(r.channels[0])
}

// Channel returns the samples of channel i. The slice must not be modified.
func (r *Raw) Channel(i int) []int { return r.channels[i] }

// Decode splits data into f.Channels() sequences, assigning samples in
// round-robin order. A trailing partial sample group is dropped; a buffer
// holding no complete group is malformed.
func Decode(data []byte, f Format) (*Raw, error) {
	if f.codec == nil {
		return nil, fault.Newf(fault.KindUnsupportedFormat, "format has no decoder")
	}

	bps := f.BytesPerSample()
	groupSize := f.GroupSize()
	groups := len(data) / groupSize
	if groups == 0 {
		return nil, fault.Newf(fault.KindMalformedInput, "%d bytes holds no complete %d-byte sample group", len(data), groupSize)
	}
	if rem := len(data) % groupSize; rem != 0 {
		log.Debug("dropping trailing partial sample group", "bytes", rem)
	}

	channels := make([][]int, f.channels)
	for ch := range channels {
		channels[ch] = make([]int, groups)
	}

	off := 0
	for g := 0; g < groups; g++ {
		for ch := 0; ch < f.channels; ch++ {
			channels[ch][g] = f.codec.decode(data[off : off+bps])
			off += bps
		}
	}

	log.Debug("decoded samples", "format", f, "groups", groups)
	return &Raw{channels: channels}, nil
}

// Encode interleaves channels into a byte buffer laid out as f. It is the
// inverse of Decode for values inside f.ValueRange().
func Encode(channels [][]int, f Format) ([]byte, error) {
	if f.codec == nil {
		return nil, fault.Newf(fault.KindUnsupportedFormat, "format has no encoder")
	}
	if len(channels) != f.channels {
		return nil, fault.Newf(fault.KindMalformedInput, "got %d channels, format has %d", len(channels), f.channels)
	}

	n := len(channels[0])
	for ch, s := range channels {
		if len(s) != n {
			return nil, fault.Newf(fault.KindMalformedInput, "channel %d has %d samples, want %d", ch, len(s), n)
		}
	}

	out := make([]byte, 0, n*f.GroupSize())
	for i := 0; i < n; i++ {
		for _, s := range channels {
			out = f.codec.append(out, s[i])
		}
	}
	return out, nil
}
