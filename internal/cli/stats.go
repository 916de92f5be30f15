// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/ik5/audsynth/synth"
)

// FormatStats renders a short report for buf under the given label. Buffers
// in the 16-bit domain also get their normalized figures.
func FormatStats(label string, buf synth.Buffer) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %d samples @ %d Hz, %.3fs\n", label, buf.Len(), buf.SampleRate, buf.Duration)
	fmt.Fprintf(&sb, "  %s\n", buf.Stats())

	if buf.Scale != 0 && buf.Scale != synth.FloatScale {
		norm := synth.Buffer{
			Samples:    buf.Normalized(),
			SampleRate: buf.SampleRate,
			Duration:   buf.Duration,
			Scale:      synth.FloatScale,
		}
		fmt.Fprintf(&sb, "  normalized: %s\n", norm.Stats())
	}

	return sb.String()
}
