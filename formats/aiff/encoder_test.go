// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audsynth/internal/synthtest"
	"github.com/ik5/audsynth/stream"
	"github.com/ik5/audsynth/synth"
)

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	buf, err := synth.SawtoothWave(220, 0.6, 0.1, 11025)
	if err != nil {
		t.Fatalf("SawtoothWave() error = %v", err)
	}

	var ws synthtest.WriteSeeker
	if err := Encode(&ws, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.HasPrefix(ws.Bytes(), []byte("FORM")) {
		t.Fatalf("output does not start with a FORM chunk: %q", ws.Bytes()[:4])
	}

	src, err := Decoder{}.Decode(bytes.NewReader(ws.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 11025 || src.Channels() != 1 {
		t.Fatalf("format = %d Hz / %d ch, want 11025 Hz / 1 ch", src.SampleRate(), src.Channels())
	}

	got, err := stream.Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if got.Len() != buf.Len() {
		t.Fatalf("decoded %d samples, want %d", got.Len(), buf.Len())
	}
	for i := range buf.Samples {
		if !synthtest.Near(got.Samples[i], buf.Samples[i], 2.0/32768) {
			t.Fatalf("sample[%d] = %v, want ≈%v", i, got.Samples[i], buf.Samples[i])
		}
	}
}

func TestEncode_InvalidRate(t *testing.T) {
	t.Parallel()

	var ws synthtest.WriteSeeker
	if err := Encode(&ws, synth.Buffer{Samples: []float64{0}}); !errors.Is(err, ErrUnsupportedSampleRate) {
		t.Errorf("Encode() error = %v, want %v", err, ErrUnsupportedSampleRate)
	}
}
