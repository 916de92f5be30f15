// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/audsynth/internal/synthtest"
)

func TestMonoMixer_AveragesChannels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		values   []float64
		want     float64
	}{
		{name: "stereo", channels: 2, values: []float64{1, 0}, want: 0.5},
		{name: "opposite phase", channels: 2, values: []float64{0.8, -0.8}, want: 0},
		{name: "four channels", channels: 4, values: []float64{0.1, 0.2, 0.3, 0.4}, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := synthtest.NewMockSource(8000, tt.channels, 10, func(_, ch int) float64 {
				return tt.values[ch]
			})
			m := NewMonoMixer(src)

			if m.Channels() != 1 {
				t.Errorf("Channels() = %d, want 1", m.Channels())
			}

			dst := make([]float64, 10)
			n, err := m.ReadSamples(dst)
			if n != 10 {
				t.Fatalf("ReadSamples() n = %d, want 10", n)
			}
			if err != nil && err != io.EOF {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			for i, s := range dst {
				if !synthtest.Near(s, tt.want, 1e-12) {
					t.Errorf("dst[%d] = %v, want %v", i, s, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := synthtest.NewConstantSource(8000, 1, 5, 0.7)
	dst := make([]float64, 5)
	n, _ := NewMonoMixer(src).ReadSamples(dst)

	if n != 5 || dst[4] != 0.7 {
		t.Errorf("ReadSamples() = %d, %v; want 5 samples of 0.7", n, dst)
	}
}

func TestMonoMixer_GrowsScratchBuffer(t *testing.T) {
	t.Parallel()

	src := synthtest.NewConstantSource(8000, 2, 10000, 0.5)
	dst := make([]float64, 10000)
	n, _ := NewMonoMixer(src).ReadSamples(dst)

	if n != 10000 {
		t.Errorf("ReadSamples() n = %d, want 10000", n)
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	n, err := NewMonoMixer(synthtest.NewSilentSource(8000, 2, 10)).ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestMonoMixer_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := NewMonoMixer(&synthtest.FailingSource{Err: boom}).ReadSamples(make([]float64, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	dst := make([]float64, 1024)

	for b.Loop() {
		src := synthtest.NewSilentSource(44100, 2, 44100)
		m := NewMonoMixer(src)
		for {
			if _, err := m.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
