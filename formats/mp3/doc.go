// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit PCM, so the Source
// reports two channels even for mono files. Pass it through
// stream.NewMonoMixer or stream.Collect to get a single channel:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, err := stream.Collect(src)
//
// # Output Format
//
//   - Sample format: float64 in [-1, 1], from signed 16-bit little-endian
//   - Channels: always 2
//   - Sample rate: as stored in the stream
//
// go-mp3 hands out bytes, not samples. A read that ends halfway through a
// sample keeps the leftover byte and completes it on the next call, so
// ReadSamples never returns a torn sample.
//
// MP3 is decode-only here; rendered buffers are written as WAV or AIFF.
package mp3
