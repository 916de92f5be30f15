// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    float64
		bits int
		want int
	}{
		{name: "8-bit zero", x: 0, bits: 8, want: 128},
		{name: "8-bit full positive", x: 1, bits: 8, want: 255},
		{name: "8-bit full negative", x: -1, bits: 8, want: 0},
		{name: "8-bit clamps above", x: 3, bits: 8, want: 255},
		{name: "8-bit clamps below", x: -2, bits: 8, want: 0},
		{name: "16-bit zero", x: 0, bits: 16, want: 0},
		{name: "16-bit full positive", x: 1, bits: 16, want: 32767},
		{name: "16-bit full negative", x: -1, bits: 16, want: -32767},
		{name: "16-bit half", x: 0.5, bits: 16, want: 16384},
		{name: "16-bit clamps", x: 1.5, bits: 16, want: 32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Quantize(tt.x, tt.bits)
			if err != nil {
				t.Fatalf("Quantize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Quantize(%v, %d) = %d, want %d", tt.x, tt.bits, got, tt.want)
			}
		})
	}
}

func TestQuantize_UnsupportedDepth(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{0, 4, 12, 24, 32} {
		if _, err := Quantize(0.5, bits); !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("Quantize(0.5, %d) error = %v, want ErrUnsupportedBitDepth", bits, err)
		}
		if _, err := Dequantize(1, bits); !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("Dequantize(1, %d) error = %v, want ErrUnsupportedBitDepth", bits, err)
		}
	}
}

func TestQuantize_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		tol  float64
	}{
		{bits: 8, tol: 1 / 127.5},
		{bits: 16, tol: 1.0 / 32767},
	}

	for _, tt := range tests {
		for i := -100; i <= 100; i++ {
			x := float64(i) / 100
			q, err := Quantize(x, tt.bits)
			if err != nil {
				t.Fatalf("Quantize() error = %v", err)
			}
			back, err := Dequantize(q, tt.bits)
			if err != nil {
				t.Fatalf("Dequantize() error = %v", err)
			}
			if math.Abs(back-x) > tt.tol {
				t.Errorf("%d-bit round trip of %v = %v, off by more than %v", tt.bits, x, back, tt.tol)
			}
		}
	}
}

func TestExpand8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		q    int
		want int
	}{
		{0, -32768},
		{128, 0},
		{255, 32512},
	}

	for _, tt := range tests {
		if got := Expand8(tt.q); got != tt.want {
			t.Errorf("Expand8(%d) = %d, want %d", tt.q, got, tt.want)
		}
	}
}
