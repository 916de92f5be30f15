// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Kind identifies an effect and fixes its place in the chain. Lower kinds
// run first.
type Kind int

const (
	KindLowPass Kind = iota
	KindDistortion
	KindNoise
	KindVibrato
	KindBitDepth
)

var kindNames = [...]string{
	KindLowPass:    "lowpass",
	KindDistortion: "distortion",
	KindNoise:      "noise",
	KindVibrato:    "vibrato",
	KindBitDepth:   "bitdepth",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Mode tells whether an effect processes its input or throws it away.
type Mode int

const (
	// Transforms effects compute their output from the incoming buffer.
	Transforms Mode = iota
	// Replaces effects ignore the incoming samples and synthesize new ones.
	Replaces
)

func (m Mode) String() string {
	if m == Replaces {
		return "replaces"
	}
	return "transforms"
}

// Voice is what replacing effects need to know about the request being
// rendered.
type Voice struct {
	Frequency float64
	Amplitude float64
	Rand      *rand.Rand
}

// Effect is one stage of the chain.
type Effect interface {
	Kind() Kind
	Mode() Mode
	// Validate checks the settings against the rate the effect will run at.
	Validate(sampleRate int) error
	Apply(in Buffer, v Voice) (Buffer, error)
}

const (
	DefaultCutoffHz    = 1000.0
	DefaultFilterOrder = 5

	DefaultDistortionGain = 5.0
	DefaultDistortionMix  = 0.5

	DefaultVibratoRateHz = 5.0
	DefaultVibratoDepth  = 0.05
)

// LowPass is a Butterworth low-pass filter.
type LowPass struct {
	CutoffHz float64
	Order    int
}

// NewLowPass returns a fifth-order filter at cutoffHz.
func NewLowPass(cutoffHz float64) LowPass {
	return LowPass{CutoffHz: cutoffHz, Order: DefaultFilterOrder}
}

func (LowPass) Kind() Kind { return KindLowPass }
func (LowPass) Mode() Mode { return Transforms }

func (f LowPass) Validate(sampleRate int) error {
	return checkLowPass(f.CutoffHz, f.Order, sampleRate)
}

func (f LowPass) Apply(in Buffer, _ Voice) (Buffer, error) {
	y, err := LowPassFilter(in.Samples, f.CutoffHz, f.Order, in.SampleRate)
	if err != nil {
		return Buffer{}, err
	}

	out := in
	out.Samples = y
	return out, nil
}

// Distortion soft-clips with tanh and blends the result with the dry signal.
type Distortion struct {
	Gain float64 // > 0
	Mix  float64 // 0 is dry, 1 is fully clipped
}

// NewDistortion returns gain 5 at an even dry/wet mix.
func NewDistortion() Distortion {
	return Distortion{Gain: DefaultDistortionGain, Mix: DefaultDistortionMix}
}

func (Distortion) Kind() Kind { return KindDistortion }
func (Distortion) Mode() Mode { return Transforms }

func (d Distortion) Validate(int) error {
	if !(d.Gain > 0) || math.IsInf(d.Gain, 0) {
		return fmt.Errorf("%w: distortion gain must be positive, got %v", ErrInvalidParameter, d.Gain)
	}
	if !(d.Mix >= 0 && d.Mix <= 1) {
		return fmt.Errorf("%w: distortion mix must be in [0, 1], got %v", ErrInvalidParameter, d.Mix)
	}
	return nil
}

func (d Distortion) Apply(in Buffer, _ Voice) (Buffer, error) {
	if err := d.Validate(in.SampleRate); err != nil {
		return Buffer{}, err
	}

	out := in.Clone()
	for i, x := range out.Samples {
		out.Samples[i] = (1-d.Mix)*x + d.Mix*math.Tanh(x*d.Gain)
	}
	return out, nil
}

// NoiseReplace discards its input and emits white noise.
type NoiseReplace struct {
	Amplitude float64
	Duration  float64 // seconds
}

// NewNoiseReplace returns one second of noise at amplitude.
func NewNoiseReplace(amplitude float64) NoiseReplace {
	return NoiseReplace{Amplitude: amplitude, Duration: DefaultDuration}
}

func (NoiseReplace) Kind() Kind { return KindNoise }
func (NoiseReplace) Mode() Mode { return Replaces }

func (n NoiseReplace) Validate(sampleRate int) error {
	if math.IsNaN(n.Amplitude) || math.IsInf(n.Amplitude, 0) {
		return fmt.Errorf("%w: noise amplitude must be finite, got %v", ErrInvalidParameter, n.Amplitude)
	}
	return validateTiming(n.Duration, sampleRate)
}

func (n NoiseReplace) Apply(in Buffer, v Voice) (Buffer, error) {
	if err := n.Validate(in.SampleRate); err != nil {
		return Buffer{}, err
	}
	return WhiteNoise(n.Amplitude, n.Duration, in.SampleRate, v.Rand)
}

// Vibrato discards its input and re-synthesizes a sine whose frequency is
// swept by a low-frequency oscillator of Depth*frequency around the carrier.
type Vibrato struct {
	RateHz   float64
	Depth    float64 // fraction of the carrier frequency
	Duration float64 // seconds
}

// NewVibrato returns a 5 Hz, 5% vibrato lasting one second.
func NewVibrato() Vibrato {
	return Vibrato{RateHz: DefaultVibratoRateHz, Depth: DefaultVibratoDepth, Duration: DefaultDuration}
}

func (Vibrato) Kind() Kind { return KindVibrato }
func (Vibrato) Mode() Mode { return Replaces }

func (vb Vibrato) Validate(sampleRate int) error {
	if !(vb.RateHz >= 0) || math.IsInf(vb.RateHz, 0) {
		return fmt.Errorf("%w: vibrato rate must be non-negative, got %v", ErrInvalidParameter, vb.RateHz)
	}
	if math.IsNaN(vb.Depth) || math.IsInf(vb.Depth, 0) {
		return fmt.Errorf("%w: vibrato depth must be finite, got %v", ErrInvalidParameter, vb.Depth)
	}
	return validateTiming(vb.Duration, sampleRate)
}

func (vb Vibrato) Apply(in Buffer, v Voice) (Buffer, error) {
	if err := vb.Validate(in.SampleRate); err != nil {
		return Buffer{}, err
	}

	carrier := Oscillator{Waveform: Sine, Frequency: v.Frequency, Amplitude: v.Amplitude}
	if err := carrier.Validate(); err != nil {
		return Buffer{}, err
	}

	out := newBuffer(in.SampleRate, vb.Duration)
	n := len(out.Samples)
	for i := range n {
		t := timeAt(i, n, vb.Duration)
		lfo := vb.Depth * v.Frequency * math.Sin(2*math.Pi*vb.RateHz*t)
		out.Samples[i] = v.Amplitude * math.Sin(2*math.Pi*(v.Frequency+lfo)*t)
	}
	return out, nil
}

// BitDepth requantizes to 8 or 16 bits. The output is in the signed 16-bit
// integer domain (Scale == Int16Scale): 8-bit values are re-expanded with
// Expand8, 16-bit values are the quantized integers themselves.
type BitDepth struct {
	Bits int
}

func NewBitDepth(bits int) BitDepth { return BitDepth{Bits: bits} }

func (BitDepth) Kind() Kind { return KindBitDepth }
func (BitDepth) Mode() Mode { return Transforms }

func (b BitDepth) Validate(int) error {
	if b.Bits != 8 && b.Bits != 16 {
		return fmt.Errorf("%w: %d (want 8 or 16)", ErrUnsupportedBitDepth, b.Bits)
	}
	return nil
}

func (b BitDepth) Apply(in Buffer, _ Voice) (Buffer, error) {
	if err := b.Validate(in.SampleRate); err != nil {
		return Buffer{}, err
	}

	src := in.Normalized()
	out := in
	out.Samples = make([]float64, len(src))
	out.Scale = Int16Scale
	for i, x := range src {
		q, err := Quantize(x, b.Bits)
		if err != nil {
			return Buffer{}, err
		}
		if b.Bits == 8 {
			q = Expand8(q)
		}
		out.Samples[i] = float64(q)
	}
	return out, nil
}
