// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidDstSize, "dst size must be multiple of channels"},
		{ErrNoExtension, "file has no extension"},
		{ErrUnsupportedFormat, "unsupported audio format"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrUnsupportedFormat_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("song.flac: %w", ErrUnsupportedFormat)
	if !errors.Is(wrapped, ErrUnsupportedFormat) {
		t.Error("errors.Is() failed for wrapped ErrUnsupportedFormat")
	}
	if errors.Is(wrapped, ErrNoExtension) {
		t.Error("errors.Is() matched the wrong sentinel")
	}
}
