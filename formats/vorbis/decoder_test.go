// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ik5/towav16/audio"
)

// mockOggReader simulates the oggvorbis.Reader for testing
type mockOggReader struct {
	sampleRate   int
	channels     int
	samples      []float32
	offset       int
	returnErrors bool
	lastLen      int
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	m.lastLen = len(p)
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(p, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("This is not Ogg data"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3},
	}
	src := &source{dec: mock, sampleRate: 48000, channels: 2}

	// 5 slots only hold two whole stereo frames.
	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if mock.lastLen != 4 {
		t.Errorf("decoder asked for %d samples, want 4", mock.lastLen)
	}
	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n)
	}
	for i := range n {
		if dst[i] != mock.samples[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], mock.samples[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Errorf("second ReadSamples() = (%d, %v), want (2, nil)", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("final ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_BufferSmallerThanFrame(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{channels: 2}, channels: 2}

	if _, err := src.ReadSamples(make([]float32, 1)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{channels: 1, returnErrors: true}, channels: 1}

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
	if err != nil && !strings.HasPrefix(err.Error(), "reading vorbis samples: ") {
		t.Errorf("ReadSamples() error = %q, want %q context", err, "reading vorbis samples")
	}
}
