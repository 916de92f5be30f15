// SPDX-License-Identifier: EPL-2.0

package synthtest

import (
	"errors"
	"io"
	"math"
)

// Near reports whether a and b differ by at most tol.
func Near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Peak returns max(|x|) over samples.
func Peak(samples []float64) float64 {
	var p float64
	for _, s := range samples {
		p = max(p, math.Abs(s))
	}
	return p
}

// WriteSeeker is an in-memory io.WriteSeeker, which the go-audio encoders
// need in place of a file.
type WriteSeeker struct {
	buf []byte
	off int64
}

func (w *WriteSeeker) Write(p []byte) (int, error) {
	end := w.off + int64(len(p))
	if end > int64(len(w.buf)) {
		grown := make([]byte, end)
		copy(grown, w.buf)
		w.buf = grown
	}
	copy(w.buf[w.off:], p)
	w.off = end
	return len(p), nil
}

func (w *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = w.off + offset
	case io.SeekEnd:
		next = int64(len(w.buf)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if next < 0 {
		return 0, errors.New("negative position")
	}
	w.off = next
	return next, nil
}

// Bytes returns everything written so far.
func (w *WriteSeeker) Bytes() []byte { return w.buf }
