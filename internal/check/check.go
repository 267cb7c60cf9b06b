// SPDX-License-Identifier: EPL-2.0

// Package check provides the -check diagnostics: whether ffmpeg is usable
// for S16LE WAV output and which formats the native backend decodes.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ik5/towav16/internal/config"
	"github.com/ik5/towav16/internal/encoder"
)

// Sentinel errors for the ffmpeg probe.
var (
	ErrFFmpegNotFound = errors.New("ffmpeg not found")
	ErrNoPCMEncoder   = errors.New("ffmpeg lacks the pcm_s16le encoder")
)

const probeTimeout = 10 * time.Second

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
}

// RunCheck prints the availability of both backends and reports whether
// the one selected in cfg can run.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ffmpegOK := checkFFmpeg(cfg.FFmpegPath, log)
	checkNative(log)

	if cfg.Encoder == config.EncoderFFmpeg && !ffmpegOK {
		log.Error("Selected encoder %q is not usable", cfg.Encoder)
		return false
	}

	log.Success("Selected encoder %q is ready", cfg.Encoder)
	return true
}

func checkFFmpeg(path string, log Logger) bool {
	version, err := FFmpegVersion(path)
	if err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("ffmpeg: %s", version)

	if err := HasPCMEncoder(path); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("ffmpeg encoder pcm_s16le available")
	return true
}

func checkNative(log Logger) {
	formats := encoder.NewNative().Formats()
	log.Info("Native decoders: %s", strings.Join(formats, ", "))
}

// FFmpegVersion returns the first line of `ffmpeg -version`.
func FFmpegVersion(path string) (string, error) {
	if _, err := exec.LookPath(path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFFmpegNotFound, err)
	}

	out, err := output(path, "-hide_banner", "-version")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFFmpegNotFound, err)
	}

	first, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	return strings.TrimSpace(first), nil
}

// HasPCMEncoder reports whether `ffmpeg -encoders` lists pcm_s16le.
func HasPCMEncoder(path string) error {
	out, err := output(path, "-hide_banner", "-encoders")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoPCMEncoder, err)
	}

	for line := range strings.SplitSeq(out, "\n") {
		if fields := strings.Fields(line); len(fields) >= 2 && fields[1] == "pcm_s16le" {
			return nil
		}
	}

	return ErrNoPCMEncoder
}

func output(path string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, args...).Output()
	return string(out), err
}
