// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrNoExtension       = errors.New("file has no extension")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
