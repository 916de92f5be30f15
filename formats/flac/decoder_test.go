// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"
)

type mockParser struct {
	frames []*frame.Frame
	err    error
	closed bool
}

func (m *mockParser) ParseNext() (*frame.Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.frames) == 0 {
		return nil, io.EOF
	}
	f := m.frames[0]
	m.frames = m.frames[1:]
	return f, nil
}

func (m *mockParser) Close() error {
	m.closed = true
	return nil
}

func stereoFrame(left, right []int32) *frame.Frame {
	return &frame.Frame{
		Subframes: []*frame.Subframe{
			{Samples: left, NSamples: len(left)},
			{Samples: right, NSamples: len(right)},
		},
	}
}

func TestSource_InterleavesSubframes(t *testing.T) {
	t.Parallel()

	m := &mockParser{frames: []*frame.Frame{
		stereoFrame([]int32{16384, 0}, []int32{-16384, 8192}),
		stereoFrame([]int32{32767}, []int32{-32768}),
	}}
	src := &source{dec: m, sampleRate: 44100, channels: 2, fullScale: 32768}

	dst := make([]float64, 16)
	n, err := src.ReadSamples(dst)
	if err != io.EOF {
		t.Fatalf("ReadSamples() error = %v, want io.EOF", err)
	}

	want := []float64{0.5, -0.5, 0, 0.25, 32767.0 / 32768, -1}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_SmallReadsSpanFrames(t *testing.T) {
	t.Parallel()

	m := &mockParser{frames: []*frame.Frame{
		stereoFrame([]int32{1, 2, 3}, []int32{4, 5, 6}),
		stereoFrame([]int32{7}, []int32{8}),
	}}
	src := &source{dec: m, sampleRate: 8000, channels: 2, fullScale: 1}

	var got []float64
	dst := make([]float64, 3)
	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	want := []float64{1, 4, 2, 5, 3, 6, 7, 8}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_ChannelMismatch(t *testing.T) {
	t.Parallel()

	m := &mockParser{frames: []*frame.Frame{stereoFrame([]int32{1}, []int32{2})}}
	src := &source{dec: m, sampleRate: 8000, channels: 1, fullScale: 1}

	if _, err := src.ReadSamples(make([]float64, 4)); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("ReadSamples() error = %v, want %v", err, ErrChannelMismatch)
	}
}

func TestSource_ParseError(t *testing.T) {
	t.Parallel()

	boom := errors.New("crc mismatch")
	src := &source{dec: &mockParser{err: boom}, sampleRate: 8000, channels: 1, fullScale: 1}

	if _, err := src.ReadSamples(make([]float64, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	m := &mockParser{}
	src := &source{dec: m, sampleRate: 8000, channels: 1, fullScale: 1}
	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !m.closed {
		t.Error("Close() did not close the stream")
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "text", data: []byte("This is not FLAC data")},
		{name: "magic only", data: []byte("fLaC")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}
