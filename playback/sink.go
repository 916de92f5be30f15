// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/ik5/audsynth/pcm"
	"github.com/ik5/audsynth/stream"
	"github.com/ik5/audsynth/synth"
)

// Sink consumes rendered buffers.
type Sink interface {
	// Play blocks until buf has been handed over completely or ctx is done.
	Play(ctx context.Context, buf synth.Buffer) error
	Close() error
}

// Prepare converts buf to 16-bit mono PCM at rate, resampling when the
// rates differ.
func Prepare(buf synth.Buffer, rate int) ([]int16, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: got %d", stream.ErrInvalidRate, rate)
	}
	if buf.SampleRate == rate {
		return pcm.ToInt16(buf), nil
	}
	if buf.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: buffer rate %d", stream.ErrInvalidRate, buf.SampleRate)
	}

	resampled, err := stream.Collect(stream.NewResampler(stream.NewBufferSource(buf), rate))
	if err != nil {
		return nil, fmt.Errorf("resampling to %d Hz: %w", rate, err)
	}
	return pcm.ToInt16(resampled), nil
}

// Encode16LE packs samples as signed 16-bit little-endian bytes, the layout
// oto's FormatSignedInt16LE and `aplay -f S16_LE` expect.
func Encode16LE(samples []int16) []byte {
	out := make([]byte, 0, 2*len(samples))
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}
	return out
}
