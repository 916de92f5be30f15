// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audsynth/synth"
)

const defaultBufSize = 4096

// sliceSource streams a fixed block of interleaved samples.
type sliceSource struct {
	data       []float64
	off        int
	sampleRate int
	channels   int
}

func (s *sliceSource) SampleRate() int { return s.sampleRate }
func (s *sliceSource) Channels() int   { return s.channels }
func (s *sliceSource) BufSize() int    { return defaultBufSize }
func (s *sliceSource) Close() error    { return nil }

func (s *sliceSource) ReadSamples(dst []float64) (int, error) {
	if s.off >= len(s.data) {
		return 0, io.EOF
	}

	n := copy(dst, s.data[s.off:])
	s.off += n
	if s.off >= len(s.data) {
		return n, io.EOF
	}
	return n, nil
}

// NewBufferSource streams a rendered buffer as mono samples in [-1, 1];
// integer-domain buffers are divided by their Scale on the way out.
func NewBufferSource(buf synth.Buffer) Source {
	return &sliceSource{
		data:       buf.Normalized(),
		sampleRate: buf.SampleRate,
		channels:   1,
	}
}

// NewIntBufferSource streams go-audio integer PCM, normalized by its source
// bit depth (16 when unset).
func NewIntBufferSource(ib *goaudio.IntBuffer) (Source, error) {
	if ib == nil || ib.Format == nil {
		return nil, fmt.Errorf("%w: missing format", ErrInvalidChannels)
	}
	if ib.Format.NumChannels <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, ib.Format.NumChannels)
	}
	if ib.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRate, ib.Format.SampleRate)
	}

	depth := ib.SourceBitDepth
	if depth <= 0 {
		depth = 16
	}
	full := float64(int64(1) << (depth - 1))

	data := make([]float64, len(ib.Data))
	for i, v := range ib.Data {
		data[i] = float64(v) / full
	}

	return &sliceSource{
		data:       data,
		sampleRate: ib.Format.SampleRate,
		channels:   ib.Format.NumChannels,
	}, nil
}

// Collect drains src into a mono buffer, mixing down when src has more than
// one channel, and closes it.
func Collect(src Source) (synth.Buffer, error) {
	defer src.Close()

	if src.SampleRate() <= 0 {
		return synth.Buffer{}, fmt.Errorf("%w: got %d", ErrInvalidRate, src.SampleRate())
	}

	var mono Source = src
	if src.Channels() != 1 {
		mono = NewMonoMixer(src)
	}

	size := src.BufSize()
	if size <= 0 {
		size = defaultBufSize
	}
	buf := make([]float64, size)
	var samples []float64

	for {
		n, err := mono.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return synth.Buffer{}, fmt.Errorf("read samples: %w", err)
		}
		if n == 0 {
			// a source that stalls without EOF is treated as finished
			break
		}
	}

	rate := src.SampleRate()
	return synth.Buffer{
		Samples:    samples,
		SampleRate: rate,
		Duration:   float64(len(samples)) / float64(rate),
		Scale:      synth.FloatScale,
	}, nil
}
