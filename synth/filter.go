// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design/pass"
)

// butterworthLowPass designs the cascade: one prewarped bilinear biquad per
// pole pair, plus a first-order section for odd orders. Each section has
// unity gain at DC.
func butterworthLowPass(order int, cutoffHz float64, sampleRate int) []biquad.Coefficients {
	return pass.ButterworthLP(cutoffHz, order, float64(sampleRate))
}

// LowPassFilter applies a causal Butterworth low-pass of the given order to
// samples recorded at sampleRate. The cascade starts from rest.
func LowPassFilter(samples []float64, cutoffHz float64, order, sampleRate int) ([]float64, error) {
	if err := checkLowPass(cutoffHz, order, sampleRate); err != nil {
		return nil, err
	}

	y := make([]float64, len(samples))
	copy(y, samples)

	biquad.NewChain(butterworthLowPass(order, cutoffHz, sampleRate)).ProcessBlock(y)
	return y, nil
}

func checkLowPass(cutoffHz float64, order, sampleRate int) error {
	if order < 1 {
		return fmt.Errorf("%w: filter order must be at least 1, got %d", ErrInvalidParameter, order)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, sampleRate)
	}

	// the designer falls back to pass-through sections instead of failing
	nyquist := float64(sampleRate) / 2
	wn := cutoffHz / nyquist
	if !(wn > 0 && wn < 1) {
		return fmt.Errorf("%w: cutoff %v Hz must be between 0 and the Nyquist frequency %v Hz", ErrInvalidParameter, cutoffHz, nyquist)
	}
	return nil
}
