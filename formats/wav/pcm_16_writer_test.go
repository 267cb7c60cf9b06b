// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200}
	data := writeTempWAV(t, 44100, 2, samples)

	if len(data) != 44+len(samples)*2 {
		t.Fatalf("file size = %d, want %d", len(data), 44+len(samples)*2)
	}

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"RIFF marker", string(data[0:4]), "RIFF"},
		{"WAVE marker", string(data[8:12]), "WAVE"},
		{"fmt marker", string(data[12:16]), "fmt "},
		{"audio format", binary.LittleEndian.Uint16(data[20:22]), uint16(1)},
		{"channels", binary.LittleEndian.Uint16(data[22:24]), uint16(2)},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), uint32(44100)},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), uint32(44100 * 2 * 2)},
		{"block align", binary.LittleEndian.Uint16(data[32:34]), uint16(4)},
		{"bits per sample", binary.LittleEndian.Uint16(data[34:36]), uint16(16)},
		{"data marker", string(data[36:40]), "data"},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), uint32(len(samples) * 2)},
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), uint32(36 + len(samples)*2)},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestWriteWAV16_LittleEndianSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0x0102, -2}
	data := writeTempWAV(t, 8000, 1, samples)

	pcm := data[44:]
	want := []byte{0x02, 0x01, 0xFE, 0xFF}
	for i := range want {
		if pcm[i] != want[i] {
			t.Errorf("pcm[%d] = %#x, want %#x", i, pcm[i], want[i])
		}
	}
}

func TestWriter_EmptyStream(t *testing.T) {
	t.Parallel()

	data := writeTempWAV(t, 8000, 1, nil)

	if len(data) != 44 {
		t.Errorf("file size = %d, want 44 (header only)", len(data))
	}
}

func TestWriter_Counters(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, err := NewWriter(f, 16000, 2)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if err := w.Write([]int{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt16([]int16{5, 6}); err != nil {
		t.Fatal(err)
	}

	if w.Samples() != 6 {
		t.Errorf("Samples() = %d, want 6", w.Samples())
	}
	if w.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", w.Frames())
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestNewWriter_InvalidFormat(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tests := []struct {
		rate, channels int
	}{
		{0, 1},
		{8000, 0},
		{-1, -1},
	}

	for _, tt := range tests {
		if _, err := NewWriter(f, tt.rate, tt.channels); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("NewWriter(%d, %d) error = %v, want ErrInvalidFormat", tt.rate, tt.channels, err)
		}
	}
}
