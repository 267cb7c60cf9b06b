// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 scales a sample in [-1, 1] to 16-bit PCM. Values outside
// the range are clamped. Samples that came from 16-bit PCM (v/32768)
// convert back to the exact original value.
func Float32ToInt16(x float32) int16 {
	v := x * 32768.0
	if v >= math.MaxInt16 {
		return math.MaxInt16
	}
	if v <= math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// Float32sToInts converts src into dst as 16-bit PCM values stored in ints,
// the sample layout go-audio buffers use. dst must be at least len(src).
// Returns the filled prefix of dst.
func Float32sToInts(dst []int, src []float32) []int {
	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = int(Float32ToInt16(x))
	}

	return dst
}
