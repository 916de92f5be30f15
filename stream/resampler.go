// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"

	"github.com/ik5/audsynth/pcm"
)

// Resampler converts src to another sample rate with Catmull-Rom cubic
// interpolation. It works on interleaved frames and keeps the channel count.
// Output frame j sits at source position j*srcRate/dstRate, and the stream
// ends once that position passes the last source frame.
type Resampler struct {
	src      Source
	channels int
	srcRate  int64
	dstRate  int64

	// window holds frames base-1 .. base+2; live marks which of them are
	// real source frames rather than edge copies.
	window [4][]float64
	live   [4]bool
	base   int64 // source index of window[1]
	out    int64 // index of the next output frame
	primed bool

	pending    []float64
	pendingOff int
	pendingLen int
	eof        bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	size := max(src.BufSize(), defaultBufSize)
	size -= size % channels

	r := &Resampler{
		src:      src,
		channels: channels,
		srcRate:  int64(src.SampleRate()),
		dstRate:  int64(dstRate),
		pending:  make([]float64, size),
	}
	for i := range r.window {
		r.window[i] = make([]float64, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) nextFrame(dst []float64) (bool, error) {
	for r.pendingOff >= r.pendingLen {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.pending)
		r.pendingOff = 0
		r.pendingLen = n - n%r.channels

		switch {
		case err == io.EOF:
			r.eof = true
		case err != nil:
			return false, fmt.Errorf("%w", err)
		case n == 0:
			r.eof = true
		}
	}

	copy(dst, r.pending[r.pendingOff:r.pendingOff+r.channels])
	r.pendingOff += r.channels
	return true, nil
}

// fill loads window slot i from the source, or repeats slot i-1 at the end.
func (r *Resampler) fill(i int) error {
	ok, err := r.nextFrame(r.window[i])
	if err != nil {
		return err
	}
	r.live[i] = ok
	if !ok {
		copy(r.window[i], r.window[i-1])
	}
	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.nextFrame(r.window[1])
	if err != nil {
		return err
	}
	r.live[1] = ok
	copy(r.window[0], r.window[1])

	if err := r.fill(2); err != nil {
		return err
	}
	return r.fill(3)
}

func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first
	copy(r.live[:], r.live[1:])
	r.base++

	return r.fill(3)
}

// ReadSamples produces interleaved samples at the destination rate. dst
// length must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float64) (int, error) {
	if r.dstRate <= 0 || r.srcRate <= 0 {
		return 0, ErrInvalidRate
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		// integer arithmetic keeps the output length exact
		num := r.out * r.srcRate
		for num/r.dstRate > r.base {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.live[1] {
			return written * r.channels, io.EOF
		}

		frac := float64(num%r.dstRate) / float64(r.dstRate)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = pcm.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], frac)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}
