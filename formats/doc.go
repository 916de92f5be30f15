// SPDX-License-Identifier: EPL-2.0

// Package formats ties the per-format packages together.
//
// Default builds a stream.Registry keyed by file extension (wav, aiff, mp3,
// ogg, flac). Load uses it to read any supported file into a mono
// synth.Buffer, and Save writes a rendered buffer as WAV or AIFF depending
// on the extension:
//
//	buf, err := synth.Render(req)
//	if err != nil {
//	    return err
//	}
//	if err := formats.Save("tone.wav", buf); err != nil {
//	    return err
//	}
//
//	back, err := formats.Load("tone.wav")
//
// Only WAV and AIFF can be written; MP3, Ogg Vorbis and FLAC are read-only.
package formats
