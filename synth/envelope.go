// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Envelope is a linear attack-decay-sustain-release gain curve whose total
// length is the sum of its four phase durations.
type Envelope struct {
	Attack       float64 // seconds, ramp 0 -> 1
	Decay        float64 // seconds, ramp 1 -> SustainLevel
	SustainHold  float64 // seconds held at SustainLevel
	SustainLevel float64 // gain in [0, 1]
	Release      float64 // seconds, ramp SustainLevel -> 0 at the very end
}

// NewEnvelope builds an envelope from a single sustain value that serves as
// both the plateau level and the plateau duration in seconds.
func NewEnvelope(attack, decay, sustain, release float64) Envelope {
	return Envelope{
		Attack:       attack,
		Decay:        decay,
		SustainHold:  sustain,
		SustainLevel: sustain,
		Release:      release,
	}
}

// DefaultEnvelope is 0.1 s attack, 0.1 s decay, 0.7 sustain, 0.2 s release.
func DefaultEnvelope() Envelope {
	return NewEnvelope(0.1, 0.1, 0.7, 0.2)
}

// Duration is the rendered length in seconds.
func (e Envelope) Duration() float64 {
	return e.Attack + e.Decay + e.SustainHold + e.Release
}

func (e Envelope) Validate() error {
	phases := []struct {
		name string
		v    float64
	}{
		{"attack", e.Attack},
		{"decay", e.Decay},
		{"sustain hold", e.SustainHold},
		{"release", e.Release},
	}
	for _, p := range phases {
		if !(p.v >= 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be a non-negative duration, got %v", ErrInvalidParameter, p.name, p.v)
		}
	}
	if !(e.SustainLevel >= 0 && e.SustainLevel <= 1) {
		return fmt.Errorf("%w: sustain level must be in [0, 1], got %v", ErrInvalidParameter, e.SustainLevel)
	}
	if e.Duration() == 0 {
		return fmt.Errorf("%w: all phases are zero", ErrDegenerateEnvelope)
	}
	return nil
}

// Gain returns the n-sample gain curve at sampleRate. The release ramp always
// occupies the last round(sampleRate*Release) samples and overwrites anything
// the earlier phases wrote there; samples between the hold and the release
// that rounding leaves uncovered stay at SustainLevel.
func (e Envelope) Gain(n, sampleRate int) []float64 {
	sr := float64(sampleRate)
	na := phaseSamples(sr, e.Attack)
	nd := phaseSamples(sr, e.Decay)
	ns := phaseSamples(sr, e.SustainHold)
	nr := phaseSamples(sr, e.Release)

	gain := make([]float64, n)
	for i := range gain {
		gain[i] = e.SustainLevel
	}

	pos := 0
	pos = ramp(gain, pos, na, 0, 1)
	pos = ramp(gain, pos, nd, 1, e.SustainLevel)
	_ = ramp(gain, pos, ns, e.SustainLevel, e.SustainLevel)

	start := max(n-nr, 0)
	// the ramp is laid out over nr points even when fewer fit.
	for i := start; i < n; i++ {
		gain[i] = linspaceAt(e.SustainLevel, 0, nr, i-(n-nr))
	}

	return gain
}

// phaseSamples is round(sr*seconds), capped at MaxSamples.
func phaseSamples(sr, seconds float64) int {
	return int(math.Round(min(sr*seconds, MaxSamples)))
}

// ramp writes count points of linspace(from, to, count) starting at pos,
// clipped to the slice, and returns the position after the phase.
func ramp(dst []float64, pos, count int, from, to float64) int {
	for j := range count {
		if pos+j >= len(dst) {
			break
		}
		dst[pos+j] = linspaceAt(from, to, count, j)
	}
	return pos + count
}

// linspaceAt is the j-th of count evenly spaced points from..to inclusive.
func linspaceAt(from, to float64, count, j int) float64 {
	if count <= 1 {
		return from
	}
	return from + (to-from)*float64(j)/float64(count-1)
}

// Apply multiplies buf by the gain curve sized to buf.
func (e Envelope) Apply(buf Buffer) (Buffer, error) {
	if err := e.Validate(); err != nil {
		return Buffer{}, err
	}
	if buf.SampleRate <= 0 {
		return Buffer{}, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, buf.SampleRate)
	}

	out := buf.Clone()
	for i, g := range e.Gain(len(out.Samples), out.SampleRate) {
		out.Samples[i] *= g
	}
	return out, nil
}
