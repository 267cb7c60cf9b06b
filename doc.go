// SPDX-License-Identifier: EPL-2.0

// Package towav16 converts audio files into 16-bit signed little-endian PCM
// WAV files named "<stem>-16LE.wav".
//
// The towav16 command (cmd/towav16) expands a glob pattern and converts
// every matching regular file whose output does not exist yet. The heavy
// lifting is done by ffmpeg by default, or in-process with the decoders
// under formats/.
//
// # Output Naming
//
// OutputPath is the single naming rule shared by the converter and the
// skip check:
//
//	towav16.OutputPath("take.01.flac") // "take.01-16LE.wav"
//
// # In-Process Conversion
//
// Transcode drains any audio.Source into a wav.Writer:
//
//	f, _ := os.Open("audio.mp3")
//	src, _ := mp3.Decoder{}.Decode(f)
//	out, _ := os.Create(towav16.OutputPath("audio.mp3"))
//	w, _ := wav.NewWriter(out, src.SampleRate(), src.Channels())
//	n, err := towav16.Transcode(src, w, towav16.DefaultBufferSize)
//	_ = w.Close()
//
// Sample rate and channel count follow the source; only the sample
// encoding changes.
//
// # Supported Formats
//
// The in-process path decodes:
//   - WAV (integer PCM, 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// The ffmpeg path accepts anything the local ffmpeg build can read.
package towav16
