// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) files
// through github.com/go-audio/aiff.
//
// AIFF is Apple's uncompressed PCM container. It plays the same role as WAV
// with a few differences:
//   - samples are big-endian (WAV is little-endian)
//   - the sample rate is an 80-bit extended float in the COMM chunk
//   - the container is an IFF "FORM" rather than RIFF
//
// # Supported Formats
//
// Writing:
//   - PCM 16-bit, mono
//   - Any positive sample rate
//
// Reading:
//   - PCM at 8, 16, 24 or 32 bits
//   - Any channel count
//   - Any sample rate
//
// AIFF-C files with compressed payloads are not supported.
//
// # Writing
//
// Encode stores a rendered buffer as mono 16-bit big-endian PCM. The
// encoder patches chunk sizes when it is closed, so the destination must be
// seekable:
//
//	f, err := os.Create("tone.aiff")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	if err := aiff.Encode(f, buf); err != nil {
//	    return err
//	}
//
// Like the WAV writers, Encode honours synth.Buffer.Scale, so a bit-crushed
// render is stored at its intended level.
//
// # Reading
//
// The Decoder streams the sound data chunk as interleaved float64 samples
// in [-1, 1], scaled by the file's bit depth:
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	mono, err := stream.Collect(src)
//
// Samples are pulled from go-audio in chunks of the requested size, so a
// long file is never held as one float slice. The COMM chunk is read up
// front; files without a positive channel count or sample rate are
// rejected. Readers that cannot seek are buffered in memory first, since
// go-audio walks the chunk list with Seek.
//
// # Output Format
//
// Decoder output:
//   - Sample format: float64 in [-1, 1]
//   - Channels: as stored in the file
//   - Sample rate: as stored in the file
//
// Resample and mix with the stream package when a fixed format is needed:
//
//	mono := stream.NewMonoMixer(stream.NewResampler(src, 16000))
//
// # Errors
//
//   - ErrNotAiffFile: the data is not a FORM/AIFF container
//   - ErrUnsupportedBitDepth: the sample size is not 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: no usable channel count or sample rate
//   - ErrUnsupportedSampleRate: Encode was given a buffer without a rate
//
// Example:
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("not an AIFF file")
//	}
package aiff
