// SPDX-License-Identifier: EPL-2.0

// Package pcm converts rendered float buffers into integer PCM and provides
// the interpolation kernel used by the stream resampler.
//
// Float samples are mapped with a 32767 multiplier after clamping to
// [-1, 1]. Buffers already in the 16-bit integer domain (see synth.Buffer
// Scale) are only rounded and clamped:
//
//	buf, _ := synth.Render(req)
//	samples := pcm.ToInt16(buf)
//
// IntBuffer wraps the same data as a go-audio IntBuffer, which is what the
// WAV and AIFF encoders consume.
package pcm
