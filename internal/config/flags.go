// SPDX-License-Identifier: EPL-2.0

package config

// This file implements CLI flag parsing and help text.
// Precedence is defaults < -config file < flags given on the command line.

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseFlags parses args (without the program name) into cfg. It returns
// ErrUsage when the positional count is not exactly one, ErrHelp for
// -h/-help and ErrVersion for -version. Output of the flag package itself
// is discarded; the caller prints usage.
func ParseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("towav16", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		showHelp    bool
		showVersion bool
		forceColor  bool
		noColor     bool
	)

	fs.Var(&encoderValue{&cfg.Encoder}, "encoder", "Encoder backend: ffmpeg | native")
	fs.StringVar(&cfg.FFmpegPath, "ffmpeg", cfg.FFmpegPath, "ffmpeg binary")
	fs.BoolVar(&cfg.Force, "force", cfg.Force, "Convert even if the output exists")
	fs.BoolVar(&cfg.Force, "f", cfg.Force, "Same as -force")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Announce conversions without running them")
	fs.BoolVar(&cfg.DryRun, "n", cfg.DryRun, "Same as -dry-run")
	fs.BoolVar(&forceColor, "color", false, "Force colored output")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as -verbose")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.MetricsFile, "metrics", cfg.MetricsFile, "Write Prometheus metrics textfile")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML configuration file")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showHelp, "help", false, "Show help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as -help")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ErrHelp
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if showHelp {
		return ErrHelp
	}
	if showVersion {
		return ErrVersion
	}

	if cfg.ConfigFile != "" {
		if err := applyFile(fs, cfg); err != nil {
			return err
		}
	}

	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}

	return parsePositionalArgs(fs, cfg)
}

// applyFile loads cfg.ConfigFile and then replays the flags that were set
// explicitly, so the command line wins over the file.
func applyFile(fs *flag.FlagSet, cfg *Config) error {
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
		return err
	}

	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("%w: -%s: %w", ErrUsage, name, err)
		}
	}

	return nil
}

// parsePositionalArgs sets Pattern from the single positional argument.
// -check needs none; anything other than exactly one is a usage error.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly && len(args) == 0 {
		return nil
	}
	if len(args) != 1 {
		return ErrUsage
	}

	cfg.Pattern = args[0]
	return nil
}

// PrintUsage writes the help text and an example invocation to w.
// Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 26
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "towav16 v" + version + " - convert audio files to 16-bit little-endian PCM WAV"},
		{"", ""},
		{"Usage: towav16 [OPTIONS] \"<glob-pattern>\"", ""},
		{"Example: towav16 \"*.mp3\"", ""},
		{"", ""},
		{"Each match <stem>.<ext> becomes <stem>-16LE.wav; existing outputs are skipped.", ""},
		{"", ""},
		{"Conversion", ""},
		{"  -encoder <ffmpeg|native>", "Encoder backend (default: ffmpeg)"},
		{"  -ffmpeg <path>", "ffmpeg binary (default: ffmpeg)"},
		{"  -f, -force", "Convert even if the output exists"},
		{"  -n, -dry-run", "Announce conversions without running them"},
		{"", ""},
		{"Output", ""},
		{"  -color", "Force colored output"},
		{"  -no-color", "Disable colored output"},
		{"  -v, -verbose", "Verbose output"},
		{"  -log <path>", "Append logs to file"},
		{"  -metrics <path>", "Write Prometheus metrics textfile"},
		{"", ""},
		{"Utility", ""},
		{"  -config <path>", "YAML configuration file"},
		{"  -check", "System diagnostics (ffmpeg, pcm_s16le, native formats)"},
		{"  -version", "Print version and exit"},
		{"  -h, -help", "Show this help and exit"},
	}

	for _, l := range lines {
		switch {
		case l.flags == "" && l.desc == "":
			fmt.Fprintln(w)
		case l.desc == "":
			fmt.Fprintln(w, l.flags)
		case l.flags == "":
			fmt.Fprintln(w, l.desc)
		default:
			padding := max(col1-len(l.flags), 1)
			fmt.Fprintf(w, "%s%s%s\n", l.flags, strings.Repeat(" ", padding), l.desc)
		}
	}
}

// flag.Value adapter so EncoderKind can be used with flag.Var.

type encoderValue struct{ p *EncoderKind }

func (e *encoderValue) String() string {
	if e.p == nil {
		return ""
	}
	return string(*e.p)
}

func (e *encoderValue) Set(s string) error {
	switch EncoderKind(strings.ToLower(s)) {
	case EncoderFFmpeg:
		*e.p = EncoderFFmpeg
	case EncoderNative:
		*e.p = EncoderNative
	default:
		return fmt.Errorf("invalid encoder %q (use 'ffmpeg' or 'native')", s)
	}
	return nil
}
