// Package source loads a whole media file into an interleaved integer
// sample buffer plus the layout needed to decode it.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/olivier-w/waveview/internal/media"
	"github.com/olivier-w/waveview/internal/sample"
)

const chunkSize = 64 << 10

// Status reports load progress. Percent is in [0, 1], or -1 when the total
// size is unknown.
type Status struct {
	Phase   string
	Percent float64
}

// StatusFunc receives progress updates. It may be nil.
type StatusFunc func(Status)

func (fn StatusFunc) report(phase string, done, total int64) {
	if fn == nil {
		return
	}
	pct := -1.0
	if total > 0 {
		pct = float64(done) / float64(total)
		if pct > 1 {
			pct = 1
		}
	}
	fn(Status{Phase: phase, Percent: pct})
}

// Stream is a fully loaded file.
type Stream struct {
	Path   string
	Title  string
	Data   []byte
	Format sample.Format
}

// Load reads path completely. Headerless files are laid out as raw;
// containers carry their own layout.
func Load(path string, raw sample.Format, onStatus StatusFunc) (*Stream, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !media.IsSupportedExt(ext) {
		return nil, fmt.Errorf("unsupported format %s (supported: %s)", ext, media.SupportedExtsList())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		data   []byte
		format sample.Format
	)
	switch ext {
	case ".wav":
		data, format, err = loadWAV(f, onStatus)
	case ".mp3":
		data, format, err = loadMP3(f, onStatus)
	case ".flac":
		data, format, err = loadFLAC(f, onStatus)
	case ".ogg":
		data, format, err = loadOGG(f, onStatus)
	default:
		data, err = loadRaw(f, onStatus)
		format = raw
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filepath.Base(path), err)
	}

	log.Info("loaded", "path", path, "bytes", len(data), "format", format)
	return &Stream{
		Path:   path,
		Title:  ReadTitle(path),
		Data:   data,
		Format: format,
	}, nil
}

func loadRaw(f *os.File, onStatus StatusFunc) ([]byte, error) {
	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}
	return readAll(f, size, onStatus)
}

// readAll drains r, reporting progress against total bytes.
func readAll(r io.Reader, total int64, onStatus StatusFunc) ([]byte, error) {
	buf := make([]byte, 0, max(total, 0))
	chunk := make([]byte, chunkSize)
	for {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if n > 0 {
			onStatus.report("reading", int64(len(buf)), total)
		}
		if errors.Is(err, io.EOF) {
			return buf, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
