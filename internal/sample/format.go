package sample

import (
	"encoding/binary"
	"fmt"

	"github.com/olivier-w/waveview/internal/fault"
)

// ByteOrder is the byte order of a multi-byte sample.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// codec reads and writes one sample of a fixed layout. Unsigned layouts are
// re-centered around zero so every decoded channel has a symmetric range.
type codec struct {
	decode func(b []byte) int
	append func(dst []byte, v int) []byte
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type codecKey struct {
	bits   int
	signed bool
	order  ByteOrder
}

var codecs = map[codecKey]codec{}

func register(bits int, signed bool, order ByteOrder, c codec) {
	codecs[codecKey{bits: bits, signed: signed, order: order}] = c
}

func init() {
	s8 := codec{
		decode: func(b []byte) int { return int(int8(b[0])) },
		append: func(dst []byte, v int) []byte { return append(dst, byte(int8(v))) },
	}
	u8 := codec{
		decode: func(b []byte) int { return int(b[0]) - 128 },
		append: func(dst []byte, v int) []byte { return append(dst, byte(v+128)) },
	}
	for _, o := range []ByteOrder{LittleEndian, BigEndian} {
		register(8, true, o, s8)
		register(8, false, o, u8)
	}

	for o, bo := range map[ByteOrder]byteOrder{LittleEndian: binary.LittleEndian, BigEndian: binary.BigEndian} {
		register(16, true, o, codec{
			decode: func(b []byte) int { return int(int16(bo.Uint16(b))) },
			append: func(dst []byte, v int) []byte { return bo.AppendUint16(dst, uint16(int16(v))) },
		})
		register(16, false, o, codec{
			decode: func(b []byte) int { return int(bo.Uint16(b)) - 1<<15 },
			append: func(dst []byte, v int) []byte { return bo.AppendUint16(dst, uint16(v+1<<15)) },
		})
		register(32, true, o, codec{
			decode: func(b []byte) int { return int(int32(bo.Uint32(b))) },
			append: func(dst []byte, v int) []byte { return bo.AppendUint32(dst, uint32(int32(v))) },
		})
	}

	register(24, true, LittleEndian, codec{
		decode: func(b []byte) int {
			return signExtend24(int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16)
		},
		append: func(dst []byte, v int) []byte {
			return append(dst, byte(v), byte(v>>8), byte(v>>16))
		},
	})
	register(24, true, BigEndian, codec{
		decode: func(b []byte) int {
			return signExtend24(int32(b[2]) | int32(b[1])<<8 | int32(b[0])<<16)
		},
		append: func(dst []byte, v int) []byte {
			return append(dst, byte(v>>16), byte(v>>8), byte(v))
		},
	})
}

func signExtend24(s int32) int {
	if s&0x800000 != 0 {
		s |= ^0xFFFFFF
	}
	return int(s)
}

// Format describes the layout of an interleaved sample buffer. The zero value
// is not usable; build one with NewFormat or DefaultFormat.
type Format struct {
	channels   int
	bits       int
	signed     bool
	order      ByteOrder
	sampleRate int
	codec      *codec
}

// NewFormat validates the layout and resolves its codec. Layouts with no
// registered codec fail here rather than at decode time.
func NewFormat(channels, bitsPerSample int, signed bool, order ByteOrder, sampleRate int) (Format, error) {
	if channels < 1 {
		return Format{}, fault.Newf(fault.KindUnsupportedFormat, "channel count %d", channels)
	}
	if sampleRate < 1 {
		return Format{}, fault.Newf(fault.KindUnsupportedFormat, "sampling rate %d Hz", sampleRate)
	}
	c, ok := codecs[codecKey{bits: bitsPerSample, signed: signed, order: order}]
	if !ok {
		return Format{}, fault.Newf(fault.KindUnsupportedFormat, "%d-bit %s %s", bitsPerSample, signedness(signed), order)
	}
	return Format{
		channels:   channels,
		bits:       bitsPerSample,
		signed:     signed,
		order:      order,
		sampleRate: sampleRate,
		codec:      &c,
	}, nil
}

// DefaultFormat is the layout assumed for raw files when nothing else is
// configured: mono, 16-bit signed little-endian, 48 kHz.
func DefaultFormat() Format {
	f, err := NewFormat(1, 16, true, LittleEndian, 48000)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Format) Channels() int      { return f.channels }
func (f Format) BitsPerSample() int { return f.bits }
func (f Format) Signed() bool       { return f.signed }
func (f Format) Order() ByteOrder   { return f.order }
func (f Format) SampleRate() int    { return f.sampleRate }

// BytesPerSample is the width of one sample of one channel.
func (f Format) BytesPerSample() int { return f.bits / 8 }

// GroupSize is the width of one sample group (one sample per channel).
func (f Format) GroupSize() int { return f.BytesPerSample() * f.channels }

// ValueRange returns the representable (min, max) of a decoded sample.
func (f Format) ValueRange() (int, int) {
	half := f.bits - 1
	return -(1 << half), (1 << half) - 1
}

// AppendSample appends the encoding of v to dst. Values outside ValueRange
// are truncated to the sample width.
func (f Format) AppendSample(dst []byte, v int) []byte {
	return f.codec.append(dst, v)
}

func (f Format) String() string {
	return fmt.Sprintf("%dch %d-bit %s %s %d Hz", f.channels, f.bits, signedness(f.signed), f.order, f.sampleRate)
}

func signedness(signed bool) string {
	if signed {
		return "signed"
	}
	return "unsigned"
}
