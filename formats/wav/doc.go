// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV (RIFF/WAVE) files.
//
// Rendered buffers are always written as mono 16-bit PCM. Decoding accepts
// any integer PCM layout and hands the samples to the stream package.
//
// # Supported Formats
//
// Writing:
//   - PCM 16-bit, mono
//   - Any positive sample rate
//
// Reading:
//   - Integer PCM at 8, 16, 24 or 32 bits
//   - Any channel count
//   - Any sample rate
//
// Floating point (format tag 3) and compressed variants such as ADPCM or
// mu-law are rejected with ErrOnlyPCMSupported.
//
// # Writing WAV Files
//
// Encode goes through github.com/go-audio/wav. That encoder writes the
// header first and patches the chunk sizes on Close, so the destination
// must be an io.WriteSeeker:
//
//	f, err := os.Create("tone.wav")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	if err := wav.Encode(f, buf); err != nil {
//	    return err
//	}
//
// Write never seeks. The sizes are known before the first byte goes out,
// so it streams a canonical 44-byte header followed by the samples, which
// works on pipes, sockets and HTTP responses:
//
//	err := wav.Write(os.Stdout, buf)
//
// The synth command uses it for `-out -`. WriteWAV16 is the same writer
// for callers that already hold int16 samples:
//
//	err := wav.WriteWAV16(w, 8000, []int16{0, 8192, 16384})
//
// Encode and Write honour synth.Buffer.Scale: bit-crushed buffers, whose
// samples are already in the 16-bit domain, are rounded and clamped rather
// than scaled a second time.
//
// # Decoding WAV Files
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	buf, err := stream.Collect(src) // mono, at the file's own rate
//
// The decoder returns a stream.Source of interleaved float64 samples in
// [-1, 1], scaled by the file's own bit depth. 8-bit WAV stores unsigned
// samples centred on 128; they are shifted to signed before scaling.
// go-audio reads the whole data chunk and seeks between chunks, so readers
// that are not io.ReadSeeker are buffered in memory first.
//
// # File Format
//
// The canonical file written by Write and WriteWAV16:
//   - RIFF header (12 bytes): "RIFF", file size minus 8, "WAVE"
//   - fmt chunk (24 bytes): format tag 1, channels, rate, byte rate,
//     block align, bits per sample
//   - data chunk: 8-byte chunk header, then little-endian int16 samples
//
// A RIFF size field is 32 bits, so sample data past 4 GiB returns
// ErrDataTooLarge instead of a corrupt header.
//
// # Error Handling
//
//   - ErrNotWavFile: the data is not a RIFF/WAVE container
//   - ErrOnlyPCMSupported: the format tag is not integer PCM
//   - ErrUnsupportedSampleRate: a writer was given a rate of zero or less
//   - ErrDataTooLarge: the samples do not fit in a 32-bit RIFF size
//
// Errors are wrapped with context; test for them with errors.Is:
//
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // try another decoder
//	}
package wav
