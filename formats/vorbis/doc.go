// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes straight to floats, so samples pass through unchanged as
// float64 in [-1, 1]. ReadSamples only ever returns whole frames; a dst
// shorter than one frame reads nothing.
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	r := stream.NewResampler(src, 44100)
//
// # Output Format
//
//   - Sample format: float64 in [-1, 1]
//   - Channels: as stored in the identification header
//   - Sample rate: as stored in the identification header
//
// Streams that declare no channels are rejected with
// stream.ErrInvalidChannels. Ogg Vorbis is decode-only here.
package vorbis
