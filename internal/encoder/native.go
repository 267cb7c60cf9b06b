// SPDX-License-Identifier: EPL-2.0

package encoder

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ik5/towav16"
	"github.com/ik5/towav16/audio"
	"github.com/ik5/towav16/formats/aiff"
	"github.com/ik5/towav16/formats/mp3"
	"github.com/ik5/towav16/formats/vorbis"
	"github.com/ik5/towav16/formats/wav"
)

// NewRegistry returns a registry with every built-in decoder, keyed by the
// file extensions it accepts.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// Native converts files in-process. Sample rate and channel count follow
// the source.
type Native struct {
	Registry   *audio.Registry
	BufferSize int
}

// NewNative returns a Native encoder using [NewRegistry].
func NewNative() *Native {
	return &Native{
		Registry:   NewRegistry(),
		BufferSize: towav16.DefaultBufferSize,
	}
}

// Encode decodes in and writes out. ctx is only checked before the file
// is opened; a started conversion runs to completion. When decoding or
// writing fails after out was created, out is removed so a later run does
// not mistake it for a finished conversion.
func (n *Native) Encode(ctx context.Context, in, out string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncoderFailed, in, err)
	}

	dec, err := n.Registry.Lookup(in)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncoderFailed, in, err)
	}

	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoderFailed, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("%w: decoding %s: %w", ErrEncoderFailed, in, err)
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoderFailed, err)
	}

	if err := n.write(src, dst); err != nil {
		_ = os.Remove(out)
		return fmt.Errorf("%w: %s: %w", ErrEncoderFailed, in, err)
	}

	return nil
}

// write streams src into dst and closes dst.
func (n *Native) write(src audio.Source, dst *os.File) error {
	w, err := wav.NewWriter(dst, src.SampleRate(), src.Channels())
	if err != nil {
		return errors.Join(err, dst.Close())
	}

	_, terr := towav16.Transcode(src, w, n.BufferSize)
	return errors.Join(terr, w.Close(), dst.Close())
}

// Formats lists the extensions the native backend accepts.
func (n *Native) Formats() []string {
	return n.Registry.Formats()
}
