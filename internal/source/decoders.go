package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
	"github.com/olivier-w/waveview/internal/sample"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// --- WAV ---

func loadWAV(f *os.File, onStatus StatusFunc) ([]byte, sample.Format, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, sample.Format{}, fmt.Errorf("invalid WAV file")
	}
	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return nil, sample.Format{}, fmt.Errorf("WAV audio format %d is not integer PCM", dec.WavAudioFormat)
	}

	// FwdToPCM positions the reader at the start of PCM data
	if err := dec.FwdToPCM(); err != nil {
		return nil, sample.Format{}, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	bits := int(dec.BitDepth)
	// 8-bit WAV is unsigned
	format, err := sample.NewFormat(int(dec.NumChans), bits, bits != 8, sample.LittleEndian, int(dec.SampleRate))
	if err != nil {
		return nil, sample.Format{}, err
	}

	pcmLen := dec.PCMLen()
	data, err := readAll(io.LimitReader(f, pcmLen), pcmLen, onStatus)
	if err != nil {
		return nil, sample.Format{}, err
	}
	return data, format, nil
}

// --- MP3 ---

// go-mp3 always yields 16-bit little-endian stereo.
func loadMP3(f *os.File, onStatus StatusFunc) ([]byte, sample.Format, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, sample.Format{}, fmt.Errorf("decoding MP3: %w", err)
	}
	format, err := sample.NewFormat(2, 16, true, sample.LittleEndian, dec.SampleRate())
	if err != nil {
		return nil, sample.Format{}, err
	}
	data, err := readAll(dec, dec.Length(), onStatus)
	if err != nil {
		return nil, sample.Format{}, err
	}
	return data, format, nil
}

// --- FLAC ---

func loadFLAC(f *os.File, onStatus StatusFunc) ([]byte, sample.Format, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, sample.Format{}, fmt.Errorf("decoding FLAC: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	// Samples are stored in the narrowest whole-byte container.
	bits := (int(info.BitsPerSample) + 7) / 8 * 8
	format, err := sample.NewFormat(channels, bits, true, sample.LittleEndian, int(info.SampleRate))
	if err != nil {
		return nil, sample.Format{}, err
	}

	total := int64(info.NSamples)
	data := make([]byte, 0, total*int64(format.GroupSize()))
	var done int64
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, sample.Format{}, fmt.Errorf("decoding FLAC frame: %w", err)
		}
		n := int(frame.Subframes[0].NSamples)
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				data = format.AppendSample(data, int(frame.Subframes[ch].Samples[i]))
			}
		}
		done += int64(n)
		onStatus.report("decoding", done, total)
	}
	return data, format, nil
}

// --- OGG Vorbis ---

func loadOGG(f *os.File, onStatus StatusFunc) ([]byte, sample.Format, error) {
	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, sample.Format{}, fmt.Errorf("decoding OGG: %w", err)
	}
	format, err := sample.NewFormat(reader.Channels(), 16, true, sample.LittleEndian, reader.SampleRate())
	if err != nil {
		return nil, sample.Format{}, err
	}

	total := reader.Length()
	data := make([]byte, 0, max(total, 0)*int64(format.GroupSize()))
	buf := make([]float32, chunkSize)
	var done int64
	for {
		n, err := reader.Read(buf)
		for _, s := range buf[:n] {
			data = format.AppendSample(data, floatToInt16(s))
		}
		done += int64(n / format.Channels())
		if n > 0 {
			onStatus.report("decoding", done, total)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, sample.Format{}, fmt.Errorf("decoding OGG: %w", err)
		}
	}
	return data, format, nil
}

func floatToInt16(s float32) int {
	if s > 1.0 {
		s = 1.0
	} else if s < -1.0 {
		s = -1.0
	}
	return int(s * 32767)
}
