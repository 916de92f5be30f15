// SPDX-License-Identifier: EPL-2.0

// Package playback hands rendered buffers to an audio device or a byte
// stream.
//
// Every Sink takes a synth.Buffer at any sample rate. Prepare resamples it
// to the sink's rate with the stream package and converts it to 16-bit mono
// PCM, honouring the buffer's Scale so bit-crushed output plays at the
// right level.
//
// Oto drives the default output device through github.com/ebitengine/oto/v3:
//
//	sink, err := playback.NewOto(48000)
//	if err != nil {
//	    return err
//	}
//	defer sink.Close()
//
//	err = sink.Play(ctx, buf)
//
// WriterSink writes the same PCM to any io.Writer, which is handy for
// piping into `aplay -f S16_LE -c 1 -r 48000`.
package playback
