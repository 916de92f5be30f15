// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Quantize maps x, clamped to [-1, 1], to an unsigned 8-bit value in
// [0, 255] or a signed 16-bit value in [-32767, 32767].
func Quantize(x float64, bits int) (int, error) {
	x = max(-1, min(1, x))

	switch bits {
	case 8:
		return int(math.Round((x + 1) * 127.5)), nil
	case 16:
		return int(math.Round(x * 32767)), nil
	}
	return 0, fmt.Errorf("%w: %d (want 8 or 16)", ErrUnsupportedBitDepth, bits)
}

// Dequantize is the inverse of Quantize, back to [-1, 1].
func Dequantize(q, bits int) (float64, error) {
	switch bits {
	case 8:
		return float64(q)/127.5 - 1, nil
	case 16:
		return float64(q) / 32767, nil
	}
	return 0, fmt.Errorf("%w: %d (want 8 or 16)", ErrUnsupportedBitDepth, bits)
}

// Expand8 re-expands an unsigned 8-bit sample to the signed 16-bit range,
// which is how playback and file writing consume 8-bit output.
func Expand8(q int) int {
	return (q - 128) * 256
}
