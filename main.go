// waveview - interactive ASCII waveform viewer for audio sample files
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/olivier-w/waveview/internal/config"
	"github.com/olivier-w/waveview/internal/logging"
	"github.com/olivier-w/waveview/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the command line state shared by the commands.
type app struct {
	v         *viper.Viper
	cfgFile   string // Configuration file path
	debug     bool   // Log at debug level
	bigEndian bool   // Raw samples are big-endian
}

func newApp() *app {
	return &app{v: viper.New()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "waveview [file]",
		Short: "Interactive ASCII waveform viewer",
		Long: `waveview draws one channel of an audio file as an ASCII waveform and lets
you pan and zoom through it in time and value.

Headerless files (.raw, .pcm, .bin, .s16, .s32) are read with the layout
given by the format flags; WAV, MP3, FLAC and Ogg files describe their own.
With no file, a browser lists the viewable files in the current directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closer, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer closer()

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runViewer(cfg, path)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./waveview.yaml if present)")
	pf.BoolVarP(&a.debug, "debug", "d", false, "log at debug level")
	pf.String("log-file", "", "write logs to this file")

	// Raw sample layout
	pf.IntP("channels", "n", 1, "interleaved channels in raw files")
	pf.IntP("bits", "b", 16, "bits per sample in raw files")
	pf.IntP("rate", "r", 48000, "sampling rate of raw files (Hz)")
	pf.BoolVar(&a.bigEndian, "big-endian", false, "raw samples are big-endian")
	pf.Bool("unsigned", false, "raw samples are unsigned")
	pf.IntP("channel", "c", 0, "channel to display (0-based)")

	a.v.BindPFlag("format.channels", pf.Lookup("channels"))
	a.v.BindPFlag("format.bits", pf.Lookup("bits"))
	a.v.BindPFlag("format.sample_rate", pf.Lookup("rate"))
	a.v.BindPFlag("format.unsigned", pf.Lookup("unsigned"))
	a.v.BindPFlag("view.channel", pf.Lookup("channel"))
	a.v.BindPFlag("logging.file", pf.Lookup("log-file"))

	root.AddCommand(a.dumpCmd())
	return root
}

func (a *app) dumpCmd() *cobra.Command {
	dump := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the full-range view of a file and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closer, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer closer()
			return renderDump(cmd.OutOrStdout(), args[0], cfg)
		},
	}
	dump.Flags().Int("width", 80, "drawing width in columns")
	dump.Flags().Int("height", 21, "drawing height in rows (odd)")
	a.v.BindPFlag("view.width", dump.Flags().Lookup("width"))
	a.v.BindPFlag("view.height", dump.Flags().Lookup("height"))
	return dump
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) (*config.Config, func(), error) {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	closer, err := logging.Setup(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("configuration", "format", cfg.Format, "view", cfg.View)
	return cfg, func() { closer.Close() }, nil
}

// loadConfig layers defaults, the config file, WAVEVIEW_* environment
// variables and flags.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	setDefaults(a.v, cfg)

	a.v.SetEnvPrefix("WAVEVIEW")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		a.v.SetConfigName("waveview")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if err := a.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cmd.Flags().Changed("big-endian") {
		cfg.Format.ByteOrder = "little"
		if a.bigEndian {
			cfg.Format.ByteOrder = "big"
		}
	}
	if a.debug {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// setDefaults registers every key so environment variables can override it.
func setDefaults(v *viper.Viper, cfg *config.Config) {
	v.SetDefault("format.channels", cfg.Format.Channels)
	v.SetDefault("format.bits", cfg.Format.Bits)
	v.SetDefault("format.unsigned", cfg.Format.Unsigned)
	v.SetDefault("format.byte_order", cfg.Format.ByteOrder)
	v.SetDefault("format.sample_rate", cfg.Format.SampleRate)
	v.SetDefault("view.channel", cfg.View.Channel)
	v.SetDefault("view.width", cfg.View.Width)
	v.SetDefault("view.height", cfg.View.Height)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
}

func runViewer(cfg *config.Config, path string) error {
	program := tea.NewProgram(newStartupModel(cfg, path), tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	switch m := finalModel.(type) {
	case ui.Model:
		return m.Err()
	case startupModel:
		return m.Err()
	}
	return nil
}

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
