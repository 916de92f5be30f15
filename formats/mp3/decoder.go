// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audsynth/stream"
)

// go-mp3 always decodes to interleaved stereo 16-bit little-endian PCM.
const (
	channels       = 2
	bytesPerSample = 2
)

// pcmReader is the part of gomp3.Decoder the source needs.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
	// carry holds a trailing odd byte between reads
	carry    byte
	hasCarry bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	off := 0
	if s.hasCarry {
		s.buf[0] = s.carry
		s.hasCarry = false
		off = 1
	}

	n, err := s.dec.Read(s.buf[off:])
	n += off

	samples := n / bytesPerSample
	for i := range samples {
		dst[i] = float64(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768
	}

	if n%bytesPerSample != 0 {
		s.carry = s.buf[n-1]
		s.hasCarry = true
	}

	if samples == 0 && err == nil && n == 0 {
		return 0, io.EOF
	}
	return samples, err
}

// Decoder reads MPEG-1/2 layer III streams through go-mp3.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (stream.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
