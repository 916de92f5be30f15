// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audsynth/synth"
)

// Float64ToInt16 clamps x to [-1, 1] and scales it by 32767.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(x * math.MaxInt16))
}

// ClampInt16 rounds a sample already in the 16-bit domain and clamps it.
func ClampInt16(x float64) int16 {
	x = math.Round(x)
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}

// ToInt16 converts buf to 16-bit PCM, honouring its Scale.
func ToInt16(buf synth.Buffer) []int16 {
	out := make([]int16, len(buf.Samples))

	if buf.Scale == synth.Int16Scale {
		for i, s := range buf.Samples {
			out[i] = ClampInt16(s)
		}
		return out
	}

	scale := buf.Scale
	if scale == 0 {
		scale = synth.FloatScale
	}
	for i, s := range buf.Samples {
		out[i] = Float64ToInt16(s / scale)
	}
	return out
}

// IntBuffer returns buf as mono 16-bit go-audio data.
func IntBuffer(buf synth.Buffer) *goaudio.IntBuffer {
	samples := ToInt16(buf)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  buf.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}
