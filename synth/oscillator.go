// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Waveform selects an oscillator shape.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Noise
)

var waveformNames = [...]string{
	Sine:     "sine",
	Square:   "square",
	Sawtooth: "sawtooth",
	Noise:    "noise",
}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// ParseWaveform maps a name such as "sine" or "saw" to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin":
		return Sine, nil
	case "square", "sqr":
		return Square, nil
	case "sawtooth", "saw":
		return Sawtooth, nil
	case "noise", "white":
		return Noise, nil
	}
	return 0, fmt.Errorf("%w: unknown waveform %q", ErrInvalidParameter, name)
}

// DefaultDutyCycle gives a symmetric square wave.
const DefaultDutyCycle = 0.5

// Oscillator describes one periodic (or noise) source.
type Oscillator struct {
	Waveform  Waveform
	Frequency float64 // Hz, unused by Noise
	Amplitude float64
	DutyCycle float64 // Square only, in (0, 1)
}

func (o Oscillator) Validate() error {
	if o.Waveform < Sine || o.Waveform > Noise {
		return fmt.Errorf("%w: unknown waveform %d", ErrInvalidParameter, int(o.Waveform))
	}
	if o.Waveform != Noise && (!(o.Frequency > 0) || math.IsInf(o.Frequency, 0)) {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidParameter, o.Frequency)
	}
	if math.IsNaN(o.Amplitude) || math.IsInf(o.Amplitude, 0) {
		return fmt.Errorf("%w: amplitude must be finite, got %v", ErrInvalidParameter, o.Amplitude)
	}
	if o.Waveform == Square && !(o.DutyCycle > 0 && o.DutyCycle < 1) {
		return fmt.Errorf("%w: duty cycle must be in (0, 1), got %v", ErrInvalidParameter, o.DutyCycle)
	}
	return nil
}

func validateTiming(duration float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, sampleRate)
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidParameter, duration)
	}
	if float64(sampleRate)*duration > MaxSamples {
		return fmt.Errorf("%w: duration %v s exceeds %d samples at %d Hz", ErrInvalidParameter, duration, MaxSamples, sampleRate)
	}
	if NumSamples(sampleRate, duration) == 0 {
		return fmt.Errorf("%w: duration %v s is shorter than one sample at %d Hz", ErrInvalidParameter, duration, sampleRate)
	}
	return nil
}

// Generate renders duration seconds of o at sampleRate over the half-open
// interval [0, duration). rng feeds Noise; nil means a freshly seeded source.
func Generate(o Oscillator, duration float64, sampleRate int, rng *rand.Rand) (Buffer, error) {
	if err := o.Validate(); err != nil {
		return Buffer{}, err
	}
	if err := validateTiming(duration, sampleRate); err != nil {
		return Buffer{}, err
	}

	buf := newBuffer(sampleRate, duration)
	n := len(buf.Samples)
	amp := o.Amplitude
	f := o.Frequency

	switch o.Waveform {
	case Sine:
		for i := range n {
			t := timeAt(i, n, duration)
			buf.Samples[i] = amp * math.Sin(2*math.Pi*f*t)
		}
	case Square:
		bias := 2*o.DutyCycle - 1
		for i := range n {
			t := timeAt(i, n, duration)
			buf.Samples[i] = amp * sign(math.Sin(2*math.Pi*f*t)+bias)
		}
	case Sawtooth:
		for i := range n {
			ft := f * timeAt(i, n, duration)
			buf.Samples[i] = amp * (2*(ft-math.Floor(ft)) - 1)
		}
	case Noise:
		if rng == nil {
			rng = newRand(0)
		}
		for i := range n {
			buf.Samples[i] = amp * (2*rng.Float64() - 1)
		}
	}

	return buf, nil
}

// sign treats zero as positive so square waves never emit silence.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// SineWave renders amplitude*sin(2*pi*frequency*t).
func SineWave(frequency, amplitude, duration float64, sampleRate int) (Buffer, error) {
	return Generate(Oscillator{Waveform: Sine, Frequency: frequency, Amplitude: amplitude}, duration, sampleRate, nil)
}

// SquareWave renders a pulse wave; dutyCycle 0.5 is symmetric.
func SquareWave(frequency, amplitude, dutyCycle, duration float64, sampleRate int) (Buffer, error) {
	return Generate(Oscillator{Waveform: Square, Frequency: frequency, Amplitude: amplitude, DutyCycle: dutyCycle}, duration, sampleRate, nil)
}

// SawtoothWave renders a rising ramp in [-amplitude, amplitude).
func SawtoothWave(frequency, amplitude, duration float64, sampleRate int) (Buffer, error) {
	return Generate(Oscillator{Waveform: Sawtooth, Frequency: frequency, Amplitude: amplitude}, duration, sampleRate, nil)
}

// WhiteNoise renders uniform noise in [-amplitude, amplitude) drawn from rng.
func WhiteNoise(amplitude, duration float64, sampleRate int, rng *rand.Rand) (Buffer, error) {
	return Generate(Oscillator{Waveform: Noise, Amplitude: amplitude}, duration, sampleRate, rng)
}

// newRand returns a PCG source. A zero seed picks a random one.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
