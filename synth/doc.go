// SPDX-License-Identifier: EPL-2.0

// Package synth is the synthesis core: oscillators, an ADSR envelope, a small
// effects chain and the render pipeline that ties them together.
//
// Everything here is a pure function of its inputs (plus the seed used for
// noise). Nothing is cached between calls, nothing logs, and concurrent
// renders share no state.
//
// # Rendering
//
//	req := synth.NewRequest(synth.Sine, 440, 0.5)
//	req.Effects = []synth.Effect{
//	    synth.NewBitDepth(8),
//	    synth.NewLowPass(1000),
//	}
//	buf, err := synth.Render(req)
//
// Render generates the oscillator, applies the envelope (Sine only) and then
// runs the effects in a fixed order regardless of how they are listed:
//
//	lowpass -> distortion -> noise -> vibrato -> bitdepth
//
// # Envelope
//
// A sine lasts exactly Attack+Decay+SustainHold+Release seconds. NewEnvelope
// takes a single "sustain" number and uses it as both the plateau level and
// the plateau length; Envelope exposes SustainLevel and SustainHold
// separately for callers that want them apart.
//
// # Replacing effects
//
// NoiseReplace and Vibrato report Mode() == Replaces: they drop whatever
// reached them and synthesize a fresh buffer (one second by default).
// Effects later in the chain work on that new buffer.
//
// # Sample domain
//
// Oscillators produce floats in [-amplitude, amplitude] with Scale ==
// FloatScale. The BitDepth effect leaves samples in the signed 16-bit
// integer domain and sets Scale to Int16Scale; Buffer.Normalized divides it
// back out.
//
// # Errors
//
// Failures wrap one of ErrInvalidParameter, ErrUnsupportedBitDepth or
// ErrDegenerateEnvelope; test for them with errors.Is.
package synth
