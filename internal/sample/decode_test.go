package sample

import (
	"errors"
	"reflect"
	"testing"

	"github.com/olivier-w/waveview/internal/fault"
)

func mustFormat(t *testing.T, channels, bits int, signed bool, order ByteOrder) Format {
	t.Helper()
	f, err := NewFormat(channels, bits, signed, order, 48000)
	if err != nil {
		t.Fatalf("NewFormat() error = %v", err)
	}
	return f
}

func TestDecodeSigned16LittleEndian(t *testing.T) {
	f := mustFormat(t, 1, 16, true, LittleEndian)
	data := []byte{0x01, 0x00, 0xFF, 0xFF, 0x00, 0x80, 0xFF, 0x7F}

	raw, err := Decode(data, f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []int{1, -1, -32768, 32767}
	if got := raw.Channel(0); !reflect.DeepEqual(got, want) {
		t.Fatalf("Channel(0) = %v, want %v", got, want)
	}
}

func TestDecodeSigned32LittleEndian(t *testing.T) {
	f := mustFormat(t, 1, 32, true, LittleEndian)
	data := []byte{0x00, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x00}

	raw, err := Decode(data, f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []int{-2147483648, 2}
	if got := raw.Channel(0); !reflect.DeepEqual(got, want) {
		t.Fatalf("Channel(0) = %v, want %v", got, want)
	}
}

func TestDecodeBigEndian(t *testing.T) {
	f := mustFormat(t, 1, 16, true, BigEndian)
	raw, err := Decode([]byte{0x01, 0x00, 0xFF, 0xFE}, f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []int{256, -2}
	if got := raw.Channel(0); !reflect.DeepEqual(got, want) {
		t.Fatalf("Channel(0) = %v, want %v", got, want)
	}
}

func TestDecodeRoundRobinChannels(t *testing.T) {
	f := mustFormat(t, 2, 16, true, LittleEndian)
	// L=1 R=2, L=3 R=4, then a lone trailing left sample.
	data := []byte{1, 0, 2, 0, 3, 0, 4, 0, 5, 0}

	raw, err := Decode(data, f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if raw.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", raw.Channels())
	}
	if raw.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", raw.Len())
	}
	if got := raw.Channel(0); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("Channel(0) = %v, want [1 3]", got)
	}
	if got := raw.Channel(1); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("Channel(1) = %v, want [2 4]", got)
	}
}

func TestDecodeLengthMatchesCompleteGroups(t *testing.T) {
	for _, tc := range []struct {
		name     string
		channels int
		bits     int
	}{
		{"mono16", 1, 16},
		{"stereo16", 2, 16},
		{"tri32", 3, 32},
		{"stereo24", 2, 24},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := mustFormat(t, tc.channels, tc.bits, true, LittleEndian)
			for n := f.GroupSize(); n < f.GroupSize()*5; n++ {
				raw, err := Decode(make([]byte, n), f)
				if err != nil {
					t.Fatalf("Decode(%d bytes) error = %v", n, err)
				}
				want := n / (f.BytesPerSample() * tc.channels)
				for ch := 0; ch < tc.channels; ch++ {
					if got := len(raw.Channel(ch)); got != want {
						t.Fatalf("len(Channel(%d)) for %d bytes = %d, want %d", ch, n, got, want)
					}
				}
			}
		})
	}
}

func TestDecodeMalformedInput(t *testing.T) {
	f := mustFormat(t, 2, 16, true, LittleEndian)
	for _, data := range [][]byte{nil, {0x01}, {0x01, 0x02, 0x03}} {
		_, err := Decode(data, f)
		if !errors.Is(err, fault.ErrMalformedInput) {
			t.Fatalf("Decode(%v) error = %v, want ErrMalformedInput", data, err)
		}
	}
}

func TestNewFormatUnsupported(t *testing.T) {
	for _, tc := range []struct {
		channels, bits, rate int
		signed               bool
	}{
		{1, 12, 48000, true},
		{1, 32, 48000, false},
		{1, 24, 48000, false},
		{0, 16, 48000, true},
		{1, 16, 0, true},
	} {
		if _, err := NewFormat(tc.channels, tc.bits, tc.signed, LittleEndian, tc.rate); !errors.Is(err, fault.ErrUnsupportedFormat) {
			t.Fatalf("NewFormat(%+v) error = %v, want ErrUnsupportedFormat", tc, err)
		}
	}
}

func TestDecodeZeroFormatIsUnsupported(t *testing.T) {
	if _, err := Decode([]byte{0, 0}, Format{}); !errors.Is(err, fault.ErrUnsupportedFormat) {
		t.Fatalf("Decode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		bits   int
		signed bool
		order  ByteOrder
	}{
		{8, true, LittleEndian},
		{8, false, LittleEndian},
		{16, true, LittleEndian},
		{16, true, BigEndian},
		{16, false, BigEndian},
		{24, true, LittleEndian},
		{24, true, BigEndian},
		{32, true, LittleEndian},
		{32, true, BigEndian},
	} {
		f := mustFormat(t, 2, tc.bits, tc.signed, tc.order)
		lo, hi := f.ValueRange()
		in := [][]int{
			{lo, -1, 0, 1, hi},
			{hi, 7, -7, lo + 1, 0},
		}

		data, err := Encode(in, f)
		if err != nil {
			t.Fatalf("Encode(%v) error = %v", f, err)
		}
		if len(data) != 5*f.GroupSize() {
			t.Fatalf("Encode(%v) produced %d bytes, want %d", f, len(data), 5*f.GroupSize())
		}
		raw, err := Decode(data, f)
		if err != nil {
			t.Fatalf("Decode(%v) error = %v", f, err)
		}
		for ch := range in {
			if got := raw.Channel(ch); !reflect.DeepEqual(got, in[ch]) {
				t.Fatalf("%v channel %d = %v, want %v", f, ch, got, in[ch])
			}
		}
	}
}

func TestEncodeRejectsRaggedChannels(t *testing.T) {
	f := mustFormat(t, 2, 16, true, LittleEndian)
	if _, err := Encode([][]int{{1, 2}, {3}}, f); !errors.Is(err, fault.ErrMalformedInput) {
		t.Fatalf("Encode() error = %v, want ErrMalformedInput", err)
	}
	if _, err := Encode([][]int{{1}}, f); !errors.Is(err, fault.ErrMalformedInput) {
		t.Fatalf("Encode() error = %v, want ErrMalformedInput", err)
	}
}

func TestValueRange(t *testing.T) {
	for bits, want := range map[int][2]int{
		8:  {-128, 127},
		16: {-32768, 32767},
		24: {-8388608, 8388607},
		32: {-2147483648, 2147483647},
	} {
		f := mustFormat(t, 1, bits, true, LittleEndian)
		lo, hi := f.ValueRange()
		if lo != want[0] || hi != want[1] {
			t.Fatalf("%d-bit ValueRange() = (%d, %d), want %v", bits, lo, hi, want)
		}
	}
}

func TestDefaultFormat(t *testing.T) {
	f := DefaultFormat()
	if f.Channels() != 1 || f.BitsPerSample() != 16 || !f.Signed() || f.Order() != LittleEndian || f.SampleRate() != 48000 {
		t.Fatalf("DefaultFormat() = %v", f)
	}
}
