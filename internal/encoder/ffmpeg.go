// SPDX-License-Identifier: EPL-2.0

package encoder

import (
	"context"
	"fmt"
	"os/exec"
)

// FFmpeg converts files by running an external ffmpeg binary. The child's
// stdout and stderr are discarded, so a failure carries no diagnostics
// beyond the exit status.
type FFmpeg struct {
	// Path is the ffmpeg executable, looked up on PATH when it has no
	// separator.
	Path string
}

// Args returns the full command line for converting in to out, program
// name first.
func (f *FFmpeg) Args(in, out string) []string {
	return []string{
		f.path(),
		"-hide_banner", "-nostdin",
		"-loglevel", "quiet",
		"-y",
		"-i", in,
		"-vn",
		"-c:a", "pcm_s16le",
		"-f", "wav",
		out,
	}
}

func (f *FFmpeg) path() string {
	if f.Path == "" {
		return "ffmpeg"
	}
	return f.Path
}

// Encode runs ffmpeg and waits for it. A cancelled ctx kills the child.
func (f *FFmpeg) Encode(ctx context.Context, in, out string) error {
	args := f.Args(in, out)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncoderFailed, in, err)
	}

	return nil
}
