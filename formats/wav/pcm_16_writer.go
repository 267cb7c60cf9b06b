// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const bitsPerSample = 16

// Writer streams 16-bit signed little-endian PCM into a WAV container.
// The RIFF and data sizes are patched on Close, so the destination must be
// seekable. Close does not close the underlying writer.
type Writer struct {
	enc      *gowav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	samples  int
	started  bool
}

// NewWriter prepares a 16-bit PCM WAV stream with the given sample rate and
// channel count.
func NewWriter(w io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: rate=%d channels=%d", ErrInvalidFormat, sampleRate, channels)
	}

	return &Writer{
		enc: gowav.NewEncoder(w, sampleRate, bitsPerSample, channels, formatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
			SourceBitDepth: bitsPerSample,
		},
		channels: channels,
	}, nil
}

// Write appends interleaved samples already scaled to the 16-bit range.
func (w *Writer) Write(samples []int) error {
	w.buf.Data = samples
	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("encoding wav samples: %w", err)
	}

	w.started = true
	w.samples += len(samples)

	return nil
}

// WriteInt16 appends interleaved int16 samples.
func (w *Writer) WriteInt16(samples []int16) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return w.Write(data)
}

// Samples is the number of interleaved samples written so far.
func (w *Writer) Samples() int { return w.samples }

// Frames is the number of sample frames written so far.
func (w *Writer) Frames() int { return w.samples / w.channels }

// Close finalizes the headers.
func (w *Writer) Close() error {
	// An empty stream still needs its header and data chunk on disk.
	if !w.started {
		if err := w.Write(nil); err != nil {
			return err
		}
	}

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}

	return nil
}

// WriteWAV16 writes a complete 16-bit PCM WAV file holding interleaved
// samples.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	wr, err := NewWriter(w, sampleRate, channels)
	if err != nil {
		return err
	}

	if err := wr.WriteInt16(samples); err != nil {
		return err
	}

	return wr.Close()
}
