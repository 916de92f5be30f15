// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audsynth/stream"
)

// pcmReader is the part of aiff.Decoder the source needs.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

const defaultBufSize = 4096

// source streams PCM frames out of an aiff.Decoder.
type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	fullScale  float64
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return defaultBufSize
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float64(v) / s.fullScale
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	return n, err
}

// fullScale returns 2^(depth-1) for the depths AIFF stores as signed
// integers.
func fullScale(depth int) (float64, error) {
	switch depth {
	case 8, 16, 24, 32:
		return float64(int64(1) << (depth - 1)), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
}

// Decoder reads AIFF files through github.com/go-audio/aiff.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (stream.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	scale, err := fullScale(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		fullScale:  scale,
	}, nil
}
