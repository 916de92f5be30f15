// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"slices"
)

// Request is everything one render needs. It is a plain value: build a new
// one for every render rather than sharing and mutating it.
type Request struct {
	Waveform  Waveform
	Frequency float64 // Hz
	Amplitude float64
	DutyCycle float64 // Square only

	// Duration in seconds for every waveform except Sine, whose length
	// comes from Envelope.
	Duration   float64
	SampleRate int

	// Envelope shapes Sine only.
	Envelope Envelope

	// Effects run in Kind order no matter how they are listed here. At most
	// one effect of each kind is allowed.
	Effects []Effect

	// Seed drives the noise generator. Zero picks a fresh seed per call.
	Seed uint64
}

// NewRequest returns a request with the stock defaults: 0.5 duty cycle, one
// second, 44100 Hz and DefaultEnvelope.
func NewRequest(waveform Waveform, frequency, amplitude float64) Request {
	return Request{
		Waveform:   waveform,
		Frequency:  frequency,
		Amplitude:  amplitude,
		DutyCycle:  DefaultDutyCycle,
		Duration:   DefaultDuration,
		SampleRate: DefaultSampleRate,
		Envelope:   DefaultEnvelope(),
	}
}

func (r Request) oscillator() Oscillator {
	return Oscillator{
		Waveform:  r.Waveform,
		Frequency: r.Frequency,
		Amplitude: r.Amplitude,
		DutyCycle: r.DutyCycle,
	}
}

// length is the duration the oscillator is rendered for.
func (r Request) length() float64 {
	if r.Waveform == Sine {
		return r.Envelope.Duration()
	}
	return r.Duration
}

// chain returns the effects sorted into their fixed order.
func (r Request) chain() ([]Effect, error) {
	chain := slices.Clone(r.Effects)
	chain = slices.DeleteFunc(chain, func(e Effect) bool { return e == nil })
	slices.SortStableFunc(chain, func(a, b Effect) int { return int(a.Kind()) - int(b.Kind()) })

	for i := 1; i < len(chain); i++ {
		if chain[i].Kind() == chain[i-1].Kind() {
			return nil, fmt.Errorf("%w: effect %s listed more than once", ErrInvalidParameter, chain[i].Kind())
		}
	}
	return chain, nil
}

// Validate checks the request, including every effect, without rendering.
func (r Request) Validate() error {
	if err := r.oscillator().Validate(); err != nil {
		return err
	}
	if r.Waveform == Sine {
		if err := r.Envelope.Validate(); err != nil {
			return err
		}
		if NumSamples(r.SampleRate, r.Envelope.Duration()) == 0 && r.SampleRate > 0 {
			return fmt.Errorf("%w: envelope is shorter than one sample at %d Hz", ErrDegenerateEnvelope, r.SampleRate)
		}
	}
	if err := validateTiming(r.length(), r.SampleRate); err != nil {
		return err
	}

	chain, err := r.chain()
	if err != nil {
		return err
	}
	for _, fx := range chain {
		if err := fx.Validate(r.SampleRate); err != nil {
			return fmt.Errorf("%s: %w", fx.Kind(), err)
		}
	}
	return nil
}

// live drops the transforming effects whose output a later replacing
// effect would discard.
func live(chain []Effect) []Effect {
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Mode() == Replaces {
			return chain[i:]
		}
	}
	return chain
}

// Render generates the oscillator, shapes Sine with the envelope and runs
// the enabled effects. Effects that run before a replacing effect are
// validated but skipped. The returned buffer carries the sample rate and the
// final duration, which replacing effects may have changed. Any failure
// aborts the render and no buffer is returned.
func Render(req Request) (Buffer, error) {
	if err := req.Validate(); err != nil {
		return Buffer{}, err
	}

	chain, err := req.chain()
	if err != nil {
		return Buffer{}, err
	}

	rng := newRand(req.Seed)

	buf, err := Generate(req.oscillator(), req.length(), req.SampleRate, rng)
	if err != nil {
		return Buffer{}, fmt.Errorf("generate %s: %w", req.Waveform, err)
	}

	if req.Waveform == Sine {
		buf, err = req.Envelope.Apply(buf)
		if err != nil {
			return Buffer{}, fmt.Errorf("envelope: %w", err)
		}
	}

	voice := Voice{Frequency: req.Frequency, Amplitude: req.Amplitude, Rand: rng}
	for _, fx := range live(chain) {
		buf, err = fx.Apply(buf, voice)
		if err != nil {
			return Buffer{}, fmt.Errorf("%s: %w", fx.Kind(), err)
		}
	}

	return buf, nil
}
