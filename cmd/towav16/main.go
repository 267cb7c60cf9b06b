// SPDX-License-Identifier: EPL-2.0

// Command towav16 converts every file matching a glob pattern into a
// 16-bit little-endian PCM WAV file named <stem>-16LE.wav, skipping files
// that were already converted.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/towav16/internal/batch"
	"github.com/ik5/towav16/internal/check"
	"github.com/ik5/towav16/internal/config"
	"github.com/ik5/towav16/internal/encoder"
	"github.com/ik5/towav16/internal/logging"
	"github.com/ik5/towav16/internal/metrics"
)

// version is set at build time via -ldflags.
var version = "1.0.0-dev"

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// 1. Defaults, optional YAML file, then flags.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, args); err != nil {
		switch {
		case errors.Is(err, config.ErrHelp):
			config.PrintUsage(stdout, version)
			return exitOK
		case errors.Is(err, config.ErrVersion):
			fmt.Fprintf(stdout, "towav16 v%s\n", version)
			return exitOK
		case errors.Is(err, config.ErrUsage):
			config.PrintUsage(stdout, version)
			return exitError
		default:
			fmt.Fprintf(stderr, "towav16: %v\n", err)
			return exitError
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "towav16: %v\n", err)
		return exitError
	}

	log, err := logging.NewLogger(&cfg, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "towav16: %v\n", err)
		return exitError
	}
	defer log.Close()

	// 2. Diagnostics only.
	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return exitError
		}
		return exitOK
	}

	enc, err := encoder.New(&cfg)
	if err != nil {
		log.Error("%v", err)
		return exitError
	}

	// 3. Interrupts stop the batch between files.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var m *metrics.Metrics
	runner := &batch.Runner{
		Encoder: enc,
		Log:     log,
		Force:   cfg.Force,
		DryRun:  cfg.DryRun,
	}
	if cfg.MetricsFile != "" {
		m = metrics.New()
		runner.Metrics = m
	}

	// 4. Expand the pattern and convert each candidate.
	paths := batch.Candidates(cfg.Pattern)
	log.Debug("Pattern %q matched %d file(s)", cfg.Pattern, len(paths))
	stats := runner.Run(ctx, paths)

	if m != nil {
		m.Finish(time.Now())
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warn("%v", err)
		}
	}

	if stats.Interrupted || ctx.Err() != nil {
		log.Warn("Interrupted")
		return exitInterrupted
	}

	return exitOK
}
