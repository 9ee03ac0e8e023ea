package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olivier-w/waveview/internal/config"
	"github.com/olivier-w/waveview/internal/nav"
	"github.com/olivier-w/waveview/internal/sample"
	"github.com/olivier-w/waveview/internal/source"
	"github.com/olivier-w/waveview/internal/ui"
	"github.com/olivier-w/waveview/internal/util"
	"github.com/olivier-w/waveview/internal/view"
)

// openChannel loads path, decodes it and projects the configured channel.
func openChannel(path string, cfg *config.Config, onStatus source.StatusFunc) (*source.Stream, sample.Channel, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, sample.Channel{}, err
	}
	if info.IsDir() {
		return nil, sample.Channel{}, fmt.Errorf("%s is a directory", path)
	}

	rawFormat, err := cfg.SampleFormat()
	if err != nil {
		return nil, sample.Channel{}, err
	}
	stream, err := source.Load(path, rawFormat, onStatus)
	if err != nil {
		return nil, sample.Channel{}, err
	}

	if onStatus != nil {
		onStatus(source.Status{Phase: "decoding", Percent: -1})
	}
	raw, err := sample.Decode(stream.Data, stream.Format)
	if err != nil {
		return nil, sample.Channel{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	ch, err := sample.Select(raw, stream.Format, cfg.View.Channel)
	if err != nil {
		return nil, sample.Channel{}, err
	}
	return stream, ch, nil
}

func buildViewerModel(path string, cfg *config.Config, onStatus source.StatusFunc) (ui.Model, error) {
	stream, ch, err := openChannel(path, cfg, onStatus)
	if err != nil {
		return ui.Model{}, err
	}
	return ui.New(ch, ui.Options{
		Title:        stream.Title,
		Format:       stream.Format,
		ChannelIndex: cfg.View.Channel,
	}), nil
}

// renderDump writes the full-range view of path followed by the visible
// time and value ranges.
func renderDump(w io.Writer, path string, cfg *config.Config) error {
	_, ch, err := openChannel(path, cfg, nil)
	if err != nil {
		return err
	}
	ctrl, err := nav.New(ch, cfg.View.Width, cfg.View.Height)
	if err != nil {
		return err
	}

	lines := view.Lines(ctrl.Grid(), view.MarkRune, view.BlankRune)
	tr, vr := ctrl.TimeRange(), ctrl.ValueRange()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if tr.Empty() {
		b.WriteString("time:  none\n")
	} else {
		fmt.Fprintf(&b, "time:  %s .. %s\n", util.FormatSeconds(tr.Min), util.FormatSeconds(tr.Max))
	}
	fmt.Fprintf(&b, "value: %s .. %s\n", util.FormatValue(vr.Min), util.FormatValue(vr.Max))

	_, err = io.WriteString(w, b.String())
	return err
}
