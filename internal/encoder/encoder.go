// SPDX-License-Identifier: EPL-2.0

package encoder

import (
	"context"
	"errors"
	"fmt"

	"github.com/ik5/towav16/internal/config"
)

var (
	// ErrEncoderFailed wraps every non-successful encoder run.
	ErrEncoderFailed = errors.New("encoder failed")
	// ErrUnknownEncoder is returned by New for an unsupported backend name.
	ErrUnknownEncoder = errors.New("unknown encoder")
)

// Encoder converts the file at in into a 16-bit little-endian PCM WAV file
// at out. out is overwritten when it exists. Encode blocks until the
// conversion finishes or ctx is cancelled.
type Encoder interface {
	Encode(ctx context.Context, in, out string) error
}

// New returns the backend selected by cfg.Encoder.
func New(cfg *config.Config) (Encoder, error) {
	switch cfg.Encoder {
	case config.EncoderFFmpeg:
		return &FFmpeg{Path: cfg.FFmpegPath}, nil
	case config.EncoderNative:
		return NewNative(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoder, cfg.Encoder)
	}
}
