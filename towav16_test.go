// SPDX-License-Identifier: EPL-2.0

package towav16

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/towav16/formats/wav"
	"github.com/ik5/towav16/internal/audiotest"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"audio.wav", "audio-16LE.wav"},
		{"track.01.mp3", "track.01-16LE.wav"},
		{"noext", "noext-16LE.wav"},
		{"dir/song.FLAC", "dir/song-16LE.wav"},
		{"some.dir/noext", "some.dir/noext-16LE.wav"},
		{"audio-16LE.wav", "audio-16LE-16LE.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got := OutputPath(tt.in)
			if got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := OutputPath(tt.in); again != got {
				t.Errorf("OutputPath(%q) not deterministic: %q then %q", tt.in, got, again)
			}
		})
	}
}

func newTempWriter(t *testing.T, rate, channels int) (*wav.Writer, *os.File) {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out-16LE.wav"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })

	w, err := wav.NewWriter(f, rate, channels)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	return w, f
}

func TestTranscode_CopiesAllSamples(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 2, 1000, 440)
	w, f := newTempWriter(t, 8000, 2)

	n, err := Transcode(src, w, 333)
	if err != nil {
		t.Fatalf("Transcode() error = %v", err)
	}
	if n != 2000 {
		t.Errorf("Transcode() wrote %d samples, want 2000", n)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	info, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 44+2000*2 {
		t.Errorf("file size = %d, want %d", info.Size(), 44+2000*2)
	}
}

func TestTranscode_ExactValues(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 1, 10, -0.5)
	w, f := newTempWriter(t, 16000, 1)

	if _, err := Transcode(src, w, 0); err != nil {
		t.Fatalf("Transcode() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	decoded, err := wav.Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf := make([]float32, 16)
	n, _ := decoded.ReadSamples(buf)
	if n != 10 {
		t.Fatalf("decoded %d samples, want 10", n)
	}
	for i := range n {
		if buf[i] != -0.5 {
			t.Errorf("sample %d = %v, want -0.5", i, buf[i])
		}
	}
}

type failingSource struct{}

func (failingSource) SampleRate() int                  { return 8000 }
func (failingSource) Channels() int                    { return 1 }
func (failingSource) Close() error                     { return nil }
func (failingSource) ReadSamples([]float32) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestTranscode_ReadError(t *testing.T) {
	t.Parallel()

	w, _ := newTempWriter(t, 8000, 1)

	_, err := Transcode(failingSource{}, w, DefaultBufferSize)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Transcode() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
