// SPDX-License-Identifier: EPL-2.0

// Package stream moves rendered audio between the synthesis core and its
// collaborators as pull-based sample streams.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float64 values in [-1, 1]. A frame holds one
// sample per channel, so len(dst) passed to ReadSamples must be a multiple
// of Channels() or the call fails with ErrInvalidDstSize.
//
// BufSize is a hint for callers sizing their read buffers. Sources built on
// a decoder report the chunk size the decoder reads most efficiently.
//
// # Sources From Buffers
//
// NewBufferSource streams a rendered synth.Buffer. Bit-crushed buffers,
// whose samples sit in the 16-bit domain, are divided back into [-1, 1] on
// the way out:
//
//	buf, err := synth.Render(req)
//	if err != nil {
//	    return err
//	}
//	src := stream.NewBufferSource(buf)
//
// NewIntBufferSource does the same for a decoded go-audio IntBuffer, scaled
// by its SourceBitDepth (16 when unset).
//
// Collect drains any Source back into a mono synth.Buffer, averaging the
// channels of multi-channel input:
//
//	mono, err := stream.Collect(src)
//
// # Resampling
//
// The playback device may run at a different rate than the render:
//
//	src := stream.NewBufferSource(buf)
//	res := stream.NewResampler(src, 48000)
//
// Resampler interpolates with a Catmull-Rom spline and emits exactly
// ceil(frames*dstRate/srcRate) frames.
//
// # Channel Mixing
//
// MonoMixer averages interleaved channels, used when inspecting stereo files:
//
//	mono := stream.NewMonoMixer(decoded)
//
// # Pipelines
//
// Every stage is itself a Source, so stages chain in any order. Reading
// from the outermost stage pulls samples through the rest:
//
//	src, err := dec.Decode(f)
//	if err != nil {
//	    return err
//	}
//	pipeline := stream.NewMonoMixer(stream.NewResampler(src, 16000))
//	defer pipeline.Close()
//
// Close on a stage closes the stage it wraps.
//
// # Decoders
//
// Registry maps a format key or file extension to a Decoder. Keys are
// lower-cased and stripped of a leading dot, so "WAV", ".wav" and "wav"
// name the same entry. A Registry is safe for concurrent use. The formats
// package builds the default registry:
//
//	reg := formats.Default()
//	dec, ok := reg.Get(filepath.Ext(path))
//
// # Thread Safety
//
// Sources are not safe for concurrent use. Give each goroutine its own
// pipeline.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available, possibly along
// with a final n > 0:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    consume(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// Constructor failures wrap ErrInvalidRate or ErrInvalidChannels; check
// them with errors.Is.
package stream
