// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audsynth/stream"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source needs. Read fills p
// with interleaved samples and returns how many values it wrote, always a
// whole number of frames.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	scratch    []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.scratch) }

func (s *source) ReadSamples(dst []float64) (int, error) {
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.scratch) < want {
		s.scratch = make([]float32, want)
	}
	s.scratch = s.scratch[:want]

	n, err := s.dec.Read(s.scratch)
	for i, v := range s.scratch[:n] {
		dst[i] = float64(v)
	}

	if n == 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}

// Decoder reads Ogg Vorbis streams through oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (stream.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if dec.Channels() <= 0 {
		return nil, fmt.Errorf("%w: got %d", stream.ErrInvalidChannels, dec.Channels())
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		scratch:    make([]float32, 4096),
	}, nil
}
