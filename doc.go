// SPDX-License-Identifier: EPL-2.0

// Package audsynth renders short synthesized tones and hands them out as
// 16-bit PCM.
//
// The synthesis core lives in the synth subpackage; this package adds the
// glue most callers want:
//
//	req := synth.NewRequest(synth.Square, 220, 0.4)
//	req.Effects = []synth.Effect{synth.NewLowPass(1500), synth.NewBitDepth(8)}
//
//	samples, rate, err := audsynth.RenderToMono16(req, 16000)
//
// # Subpackages
//
//   - synth: oscillators, ADSR envelope, effects chain, Render
//   - stream: pull-based sample streams, cubic resampler, mono mixer
//   - pcm: float to integer PCM conversion
//   - formats: WAV/AIFF writing and WAV/AIFF/MP3/Ogg/FLAC reading
//   - playback: audio device and raw PCM sinks
//
// # Pipelines
//
// Anything implementing stream.Source can go through ResampleToMono16,
// which is how decoded files and rendered buffers alike are brought to a
// common rate:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	samples, rate, err := audsynth.ResampleToMono16(src, 8000, 4096)
//
// See the individual subpackages for more detailed documentation.
package audsynth
