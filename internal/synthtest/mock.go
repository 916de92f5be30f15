// SPDX-License-Identifier: EPL-2.0

// Package synthtest holds helpers shared by the package tests.
package synthtest

import (
	"io"
	"math"
)

// MockSource generates audio from a function of (frame, channel). It
// satisfies stream.Source without importing it.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) float64
	closed      bool
}

// NewMockSource creates a source of totalFrames frames.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float64) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float64 { return 0 })
}

// NewSineSource generates a unit sine on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float64 {
		t := float64(frame) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewConstantSource generates value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float64 { return value })
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float64) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += frames
	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// FailingSource returns Err from every read.
type FailingSource struct {
	Err error
}

func (f *FailingSource) SampleRate() int                    { return 8000 }
func (f *FailingSource) Channels() int                      { return 1 }
func (f *FailingSource) BufSize() int                       { return 4096 }
func (f *FailingSource) Close() error                       { return nil }
func (f *FailingSource) ReadSamples([]float64) (int, error) { return 0, f.Err }
