// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files with github.com/mewkiz/flac.
//
// Frames are decoded one at a time and their subframes interleaved, so
// memory use stays at one frame regardless of the file length. Samples are
// normalized by the stream's bits per sample.
//
// # Supported Streams
//
//   - 4 to 32 bits per sample
//   - Any channel count the STREAMINFO block declares
//   - Any sample rate
//
// Usage:
//
//	src, err := flac.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	buf, err := stream.Collect(src)
//
// Close releases the underlying mewkiz/flac stream.
//
// # Errors
//
//   - ErrUnsupportedBitDepth: STREAMINFO reports a depth outside 4..32
//   - ErrChannelMismatch: a frame carries a different number of subframes
//     than STREAMINFO declared
//   - stream.ErrInvalidChannels: no channels or a zero sample rate
//
// FLAC is decode-only here; rendered buffers are written as WAV or AIFF.
package flac
