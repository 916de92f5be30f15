// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audsynth/stream"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is the part of flac.Stream the source needs.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source interleaves the per-channel subframes of each FLAC frame.
type source struct {
	dec        frameParser
	sampleRate int
	channels   int
	fullScale  float64

	pending []float64
	off     int
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return max(len(s.pending), 4096) }

func (s *source) Close() error {
	if err := s.dec.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// decodeNext fills pending with the next frame.
func (s *source) decodeNext() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		return err
	}
	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: %d subframes, want %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	frames := len(f.Subframes[0].Samples)
	s.pending = s.pending[:0]
	for i := range frames {
		for _, sub := range f.Subframes {
			var v int32
			if i < len(sub.Samples) {
				v = sub.Samples[i]
			}
			s.pending = append(s.pending, float64(v)/s.fullScale)
		}
	}
	s.off = 0
	return nil
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	written := 0
	for written < len(dst) {
		if s.off >= len(s.pending) {
			if s.eof {
				break
			}
			err := s.decodeNext()
			if err == io.EOF {
				s.eof = true
				break
			}
			if err != nil {
				return written, err
			}
			continue
		}

		n := copy(dst[written:], s.pending[s.off:])
		s.off += n
		written += n
	}

	if s.eof && s.off >= len(s.pending) {
		return written, io.EOF
	}
	return written, nil
}

// Decoder reads FLAC streams through github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (stream.Source, error) {
	st, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := st.Info
	depth := int(info.BitsPerSample)
	if depth < 4 || depth > 32 {
		_ = st.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}
	if info.NChannels == 0 || info.SampleRate == 0 {
		_ = st.Close()
		return nil, fmt.Errorf("%w: %d channels at %d Hz", stream.ErrInvalidChannels, info.NChannels, info.SampleRate)
	}

	return &source{
		dec:        st,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		fullScale:  float64(int64(1) << (depth - 1)),
	}, nil
}
