// SPDX-License-Identifier: EPL-2.0

package stream

import "fmt"

// MonoMixer averages the channels of each frame into one sample.
type MonoMixer struct {
	src Source
	tmp []float64
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float64, defaultBufSize),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *MonoMixer) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}
	if channels <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float64, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / channels
	inv := 1 / float64(channels)

	for f := range frames {
		var sum float64
		for _, s := range m.tmp[f*channels : (f+1)*channels] {
			sum += s
		}
		dst[f] = sum * inv
	}

	return frames, err
}
