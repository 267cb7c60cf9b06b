// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding primitives used by the in-process
// converter.
//
// # Source Interface
//
// Every format decoder returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. ReadSamples
// returns io.EOF once the stream is drained; a call may return n > 0
// together with io.EOF.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("mp3", mp3.Decoder{})
//
//	dec, err := registry.Lookup("song.MP3")
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // no decoder for this extension
//	}
//
// Keys are matched case-insensitively and without the leading dot.
package audio
