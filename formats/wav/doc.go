// SPDX-License-Identifier: EPL-2.0

// Package wav reads integer PCM WAV files and writes 16-bit signed
// little-endian PCM WAV files.
//
// Both directions go through github.com/go-audio/wav, so files with extra
// chunks (LIST, fact, ...) or WAVE_FORMAT_EXTENSIBLE headers decode fine.
//
// # Decoding
//
//	f, _ := os.Open("audio.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// 8, 16, 24 and 32-bit integer samples are normalized to float32 in
// [-1.0, 1.0]. IEEE float WAV input is rejected with
// ErrUnsupportedEncoding.
//
// # Writing
//
//	out, _ := os.Create("audio-16LE.wav")
//	w, _ := wav.NewWriter(out, 44100, 2)
//	_ = w.Write(interleaved) // []int in the int16 range
//	_ = w.Close()            // patches the RIFF and data sizes
//
// WriteWAV16 is a one-shot helper for a complete []int16 buffer.
package wav
