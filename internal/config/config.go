// Package config provides configuration structures and defaults for waveview
package config

import (
	"fmt"
	"strings"

	"github.com/olivier-w/waveview/internal/sample"
)

// Config represents the complete application configuration
type Config struct {
	Format  FormatConfig  `mapstructure:"format" yaml:"format"`   // Raw sample layout
	View    ViewConfig    `mapstructure:"view" yaml:"view"`       // Viewer settings
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"` // Logging configuration
}

// FormatConfig describes headerless input files
type FormatConfig struct {
	Channels   int    `mapstructure:"channels" yaml:"channels"`       // Interleaved channel count
	Bits       int    `mapstructure:"bits" yaml:"bits"`               // Bits per sample
	Unsigned   bool   `mapstructure:"unsigned" yaml:"unsigned"`       // Unsigned samples
	ByteOrder  string `mapstructure:"byte_order" yaml:"byte_order"`   // "little" or "big"
	SampleRate int    `mapstructure:"sample_rate" yaml:"sample_rate"` // Sampling rate in Hz
}

// ViewConfig contains viewer settings
type ViewConfig struct {
	Channel int `mapstructure:"channel" yaml:"channel"` // Channel to display (0-based)
	Width   int `mapstructure:"width" yaml:"width"`     // Drawing width for dump mode
	Height  int `mapstructure:"height" yaml:"height"`   // Drawing height for dump mode
}

// LoggingConfig contains logging configuration parameters
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // Log level (debug, info, warn, error)
	File  string `mapstructure:"file" yaml:"file"`   // Log file path; empty discards logs
}

// DefaultConfig returns a configuration with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			Channels:   1,        // Mono
			Bits:       16,       // 16-bit samples
			Unsigned:   false,    // Signed samples
			ByteOrder:  "little", // Little-endian
			SampleRate: 48000,    // 48 kHz
		},
		View: ViewConfig{
			Channel: 0,  // First channel
			Width:   80, // Dump width
			Height:  21, // Dump height
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// SampleFormat builds the raw sample layout, failing for layouts that have
// no decoder.
func (c *Config) SampleFormat() (sample.Format, error) {
	var order sample.ByteOrder
	switch strings.ToLower(c.Format.ByteOrder) {
	case "", "little", "le":
		order = sample.LittleEndian
	case "big", "be":
		order = sample.BigEndian
	default:
		return sample.Format{}, fmt.Errorf("unknown byte order %q (want little or big)", c.Format.ByteOrder)
	}
	return sample.NewFormat(c.Format.Channels, c.Format.Bits, !c.Format.Unsigned, order, c.Format.SampleRate)
}
