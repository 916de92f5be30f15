// SPDX-License-Identifier: EPL-2.0

package audsynth

import (
	"fmt"
	"io"

	"github.com/ik5/audsynth/pcm"
	"github.com/ik5/audsynth/stream"
	"github.com/ik5/audsynth/synth"
)

const defaultBufferSize = 4096

// RenderToMono16 renders req and returns it as 16-bit mono PCM at
// targetRate. A targetRate of zero keeps the request's own sample rate.
// The returned int is the rate of the samples.
func RenderToMono16(req synth.Request, targetRate int) ([]int16, int, error) {
	buf, err := synth.Render(req)
	if err != nil {
		return nil, 0, err
	}

	if targetRate == 0 || targetRate == buf.SampleRate {
		return pcm.ToInt16(buf), buf.SampleRate, nil
	}

	return ResampleToMono16(stream.NewBufferSource(buf), targetRate, defaultBufferSize)
}

// ResampleToMono16 runs src through a cubic resampler and a mono mixer and
// collects the result as 16-bit PCM. src is closed when done.
//
// bufferSize is the number of samples read per step; values below one use
// a default.
func ResampleToMono16(src stream.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, 0, fmt.Errorf("%w: got %d", stream.ErrInvalidRate, targetRate)
	}
	if bufferSize < 1 {
		bufferSize = defaultBufferSize
	}

	resampler := stream.NewResampler(src, targetRate)
	mono := stream.NewMonoMixer(resampler)
	defer mono.Close()

	// one second of output is a reasonable first guess
	pcm16 := make([]int16, 0, targetRate)
	buf := make([]float64, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, pcm.Float64ToInt16(x))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("resample: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return pcm16, targetRate, nil
}
