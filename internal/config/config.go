// SPDX-License-Identifier: EPL-2.0

// Package config holds runtime configuration: defaults, an optional YAML
// file, CLI flag parsing and validation.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EncoderKind selects the conversion backend.
type EncoderKind string

const (
	EncoderFFmpeg EncoderKind = "ffmpeg" // External ffmpeg process (default).
	EncoderNative EncoderKind = "native" // In-process decoders + WAV writer.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

var (
	// ErrUsage means the positional arguments were wrong; the caller
	// prints usage and exits 1.
	ErrUsage = errors.New("expected exactly one glob pattern")
	// ErrHelp means -h or -help was given.
	ErrHelp = errors.New("help requested")
	// ErrVersion means -version was given.
	ErrVersion = errors.New("version requested")
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by an optional YAML file, then by [ParseFlags].
type Config struct {
	// Pattern is the single positional argument.
	Pattern string `yaml:"-"`

	Encoder    EncoderKind `yaml:"encoder"`
	FFmpegPath string      `yaml:"ffmpeg_path"`

	Force  bool `yaml:"force"`   // Re-convert even when the output exists.
	DryRun bool `yaml:"dry_run"` // Announce only.

	ColorMode   ColorMode `yaml:"color"`
	Verbose     bool      `yaml:"verbose"`
	LogFile     string    `yaml:"log_file"`
	MetricsFile string    `yaml:"metrics_file"`

	ConfigFile string `yaml:"-"`
	CheckOnly  bool   `yaml:"-"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Encoder:    EncoderFFmpeg,
		FFmpegPath: "ffmpeg",
		ColorMode:  ColorAuto,
	}
}

// LoadFile overlays the YAML document at path onto c. Keys missing from
// the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// Validate checks the enum fields and requires a pattern unless only
// diagnostics were requested.
func (c *Config) Validate() error {
	switch c.Encoder {
	case EncoderFFmpeg, EncoderNative:
		// valid
	default:
		return fmt.Errorf("invalid encoder %q (use 'ffmpeg' or 'native')", c.Encoder)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.Encoder == EncoderFFmpeg && c.FFmpegPath == "" {
		return errors.New("ffmpeg path must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.Pattern == "" {
		return ErrUsage
	}

	return nil
}
