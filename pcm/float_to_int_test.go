// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"

	"github.com/ik5/audsynth/synth"
)

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "max positive", input: 1, want: math.MaxInt16},
		{name: "max negative", input: -1, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16384}, // 16383.5 rounds away from zero
		{name: "half negative", input: -0.5, want: -16384},
		{name: "small positive", input: 0.001, want: 33},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -1.5, want: -math.MaxInt16},
		{name: "clamp way over max", input: 100, want: math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float64ToInt16(tt.input); got != tt.want {
				t.Errorf("Float64ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat64ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float64ToInt16(-1)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float64ToInt16(f)
		if curr < prev {
			t.Errorf("Float64ToInt16 not monotonic: f=%v gives %d, previous %d", f, curr, prev)
		}
		prev = curr
	}
}

func TestClampInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float64
		want  int16
	}{
		{0, 0},
		{-32768, math.MinInt16},
		{32512, 32512},
		{40000, math.MaxInt16},
		{-40000, math.MinInt16},
		{100.4, 100},
		{-100.6, -101},
	}

	for _, tt := range tests {
		if got := ClampInt16(tt.input); got != tt.want {
			t.Errorf("ClampInt16(%v) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestToInt16_FloatBuffer(t *testing.T) {
	t.Parallel()

	buf := synth.Buffer{
		Samples:    []float64{0, 0.5, -0.5, 1, -1, 2},
		SampleRate: 8000,
		Scale:      synth.FloatScale,
	}

	want := []int16{0, 16384, -16384, 32767, -32767, 32767}
	got := ToInt16(buf)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestToInt16_IntegerDomain(t *testing.T) {
	t.Parallel()

	// the shape the 8-bit effect leaves behind: (q-128)*256
	buf := synth.Buffer{
		Samples:    []float64{-32768, 0, 32512},
		SampleRate: 8000,
		Scale:      synth.Int16Scale,
	}

	want := []int16{-32768, 0, 32512}
	got := ToInt16(buf)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestToInt16_ZeroScaleIsFloat(t *testing.T) {
	t.Parallel()

	got := ToInt16(synth.Buffer{Samples: []float64{1}})
	if got[0] != math.MaxInt16 {
		t.Errorf("sample = %d, want %d", got[0], math.MaxInt16)
	}
}

func TestIntBuffer(t *testing.T) {
	t.Parallel()

	buf := synth.Buffer{
		Samples:    []float64{0, 1, -1},
		SampleRate: 22050,
		Scale:      synth.FloatScale,
	}

	ib := IntBuffer(buf)
	if ib.Format.NumChannels != 1 {
		t.Errorf("NumChannels = %d, want 1", ib.Format.NumChannels)
	}
	if ib.Format.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", ib.Format.SampleRate)
	}
	if ib.SourceBitDepth != 16 {
		t.Errorf("SourceBitDepth = %d, want 16", ib.SourceBitDepth)
	}

	want := []int{0, 32767, -32767}
	for i := range want {
		if ib.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, ib.Data[i], want[i])
		}
	}
}

func BenchmarkToInt16(b *testing.B) {
	buf := synth.Buffer{Samples: make([]float64, 44100), SampleRate: 44100, Scale: synth.FloatScale}
	for i := range buf.Samples {
		buf.Samples[i] = math.Sin(float64(i) * 0.1)
	}

	b.ReportAllocs()

	for b.Loop() {
		_ = ToInt16(buf)
	}
}
