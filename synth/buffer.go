// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

const (
	// DefaultSampleRate is used by NewRequest.
	DefaultSampleRate = 44100
	// DefaultDuration is the length of non-enveloped waveforms and of the
	// replacing effects, in seconds.
	DefaultDuration = 1.0

	// FloatScale marks a buffer holding float samples around [-1, 1].
	FloatScale = 1.0
	// Int16Scale marks a buffer whose samples were re-expanded into the
	// signed 16-bit integer domain by the bit-depth effect.
	Int16Scale = 32768.0

	// MaxSamples bounds the length of any buffer the package renders,
	// a little over 13.5 hours at 44100 Hz.
	MaxSamples = math.MaxInt32
)

// Buffer is a mono block of rendered samples.
//
// len(Samples) is always NumSamples(SampleRate, Duration).
type Buffer struct {
	Samples    []float64
	SampleRate int
	Duration   float64 // seconds
	// Scale is the full-scale value of the sample domain, FloatScale or
	// Int16Scale.
	Scale float64
}

// NumSamples returns round(sampleRate*duration).
func NumSamples(sampleRate int, duration float64) int {
	return int(math.Round(float64(sampleRate) * duration))
}

func newBuffer(sampleRate int, duration float64) Buffer {
	return Buffer{
		Samples:    make([]float64, NumSamples(sampleRate, duration)),
		SampleRate: sampleRate,
		Duration:   duration,
		Scale:      FloatScale,
	}
}

func (b Buffer) Len() int { return len(b.Samples) }

// Clone returns a deep copy of b.
func (b Buffer) Clone() Buffer {
	c := b
	c.Samples = make([]float64, len(b.Samples))
	copy(c.Samples, b.Samples)
	return c
}

// Normalized returns the samples divided by Scale, so integer-domain buffers
// come back to [-1, 1].
func (b Buffer) Normalized() []float64 {
	scale := b.Scale
	if scale == 0 {
		scale = FloatScale
	}

	out := make([]float64, len(b.Samples))
	for i, s := range b.Samples {
		out[i] = s / scale
	}
	return out
}

// TimeAxis returns one timestamp per sample spread evenly over
// [0, Duration], both ends included. It is meant for plotting.
func (b Buffer) TimeAxis() []float64 {
	n := len(b.Samples)
	axis := make([]float64, n)
	if n < 2 {
		return axis
	}

	step := b.Duration / float64(n-1)
	for i := range axis {
		axis[i] = float64(i) * step
	}
	return axis
}

// Stats summarizes a buffer.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
	Peak float64 // max(|x|)
	RMS  float64
}

func (s Stats) String() string {
	return fmt.Sprintf("min=%.6g max=%.6g mean=%.6g peak=%.6g rms=%.6g", s.Min, s.Max, s.Mean, s.Peak, s.RMS)
}

// Stats computes summary values over the raw samples. An empty buffer
// yields the zero Stats.
func (b Buffer) Stats() Stats {
	if len(b.Samples) == 0 {
		return Stats{}
	}

	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum, sumSq float64
	for _, s := range b.Samples {
		st.Min = min(st.Min, s)
		st.Max = max(st.Max, s)
		st.Peak = max(st.Peak, math.Abs(s))
		sum += s
		sumSq += s * s
	}

	n := float64(len(b.Samples))
	st.Mean = sum / n
	st.RMS = math.Sqrt(sumSq / n)
	return st
}

// timeAt is the i-th point of the half-open grid of n points over [0, duration).
func timeAt(i, n int, duration float64) float64 {
	return float64(i) * duration / float64(n)
}
