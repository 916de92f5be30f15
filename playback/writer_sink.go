// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"io"

	"github.com/ik5/audsynth/synth"
)

// blockFrames is how many samples go out per write, so a cancelled context
// stops the stream within one block.
const blockFrames = 4096

// WriterSink streams raw s16le mono PCM to an io.Writer, for piping into an
// external player.
type WriterSink struct {
	w    io.Writer
	rate int
}

// NewWriterSink writes PCM at rate to w. Close closes w when it is an
// io.Closer.
func NewWriterSink(w io.Writer, rate int) *WriterSink {
	return &WriterSink{w: w, rate: rate}
}

func (s *WriterSink) SampleRate() int { return s.rate }

func (s *WriterSink) Play(ctx context.Context, buf synth.Buffer) error {
	samples, err := Prepare(buf, s.rate)
	if err != nil {
		return err
	}

	for len(samples) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := min(len(samples), blockFrames)
		if _, err := s.w.Write(Encode16LE(samples[:n])); err != nil {
			return fmt.Errorf("writing pcm: %w", err)
		}
		samples = samples[n:]
	}

	return nil
}

func (s *WriterSink) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}
