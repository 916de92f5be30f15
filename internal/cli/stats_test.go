// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"testing"

	"github.com/ik5/audsynth/synth"
)

func TestFormatStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		label string
		buf   synth.Buffer
		want  string
	}{
		{
			name:  "float domain",
			label: "tone",
			buf:   synth.Buffer{Samples: []float64{0, 1, -1, 0}, SampleRate: 4, Duration: 1, Scale: synth.FloatScale},
			want: "tone: 4 samples @ 4 Hz, 1.000s\n" +
				"  min=-1 max=1 mean=0 peak=1 rms=0.707107\n",
		},
		{
			name:  "16-bit domain",
			label: "crushed",
			buf:   synth.Buffer{Samples: []float64{16384, -16384}, SampleRate: 2, Duration: 1, Scale: synth.Int16Scale},
			want: "crushed: 2 samples @ 2 Hz, 1.000s\n" +
				"  min=-16384 max=16384 mean=0 peak=16384 rms=16384\n" +
				"  normalized: min=-0.5 max=0.5 mean=0 peak=0.5 rms=0.5\n",
		},
		{
			name:  "empty",
			label: "none",
			buf:   synth.Buffer{},
			want: "none: 0 samples @ 0 Hz, 0.000s\n" +
				"  min=0 max=0 mean=0 peak=0 rms=0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatStats(tt.label, tt.buf); got != tt.want {
				t.Errorf("FormatStats() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}
