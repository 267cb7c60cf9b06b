// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes natively to float32, so samples are passed through
// without scaling. The destination buffer handed to ReadSamples must hold
// at least one full frame (Channels() samples).
package vorbis
