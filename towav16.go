// SPDX-License-Identifier: EPL-2.0

package towav16

import (
	"fmt"
	"io"

	"github.com/mewkiz/pkg/pathutil"

	"github.com/ik5/towav16/audio"
	"github.com/ik5/towav16/formats/wav"
	"github.com/ik5/towav16/utils"
)

// OutputSuffix replaces the final extension of every converted file. An
// existing "<stem>-16LE.wav" marks the input as already converted.
const OutputSuffix = "-16LE.wav"

// DefaultBufferSize is the number of interleaved samples Transcode moves
// per read.
const DefaultBufferSize = 4096

// OutputPath derives the destination for path by dropping the extension of
// its final element and appending OutputSuffix:
//
//	audio.wav    -> audio-16LE.wav
//	track.01.mp3 -> track.01-16LE.wav
//	noext        -> noext-16LE.wav
func OutputPath(path string) string {
	return pathutil.TrimExt(path) + OutputSuffix
}

// Transcode streams every sample of src into w as 16-bit PCM and returns
// the number of interleaved samples written. The caller owns src and w;
// neither is closed here.
//
// bufferSize is rounded down to whole frames. A value smaller than one
// frame falls back to DefaultBufferSize.
func Transcode(src audio.Source, w *wav.Writer, bufferSize int) (int, error) {
	channels := max(src.Channels(), 1)

	bufferSize -= bufferSize % channels
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize - DefaultBufferSize%channels
	}

	buf := make([]float32, bufferSize)
	pcm := make([]int, bufferSize)
	total := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if werr := w.Write(utils.Float32sToInts(pcm, buf[:n])); werr != nil {
				return total, fmt.Errorf("writing samples: %w", werr)
			}
			total += n
		}

		if err == io.EOF {
			return total, nil
		}

		if err != nil {
			return total, fmt.Errorf("reading samples: %w", err)
		}
	}
}
