// SPDX-License-Identifier: EPL-2.0

// Package cli turns command line flags into a render request.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/ik5/audsynth/synth"
)

// holdFromSustain marks -hold as unset, in which case the sustain level
// doubles as the hold time.
const holdFromSustain = -1

// Options is the parsed command line.
type Options struct {
	Waveform   string
	Frequency  float64
	Amplitude  float64
	DutyCycle  float64
	Duration   float64
	SampleRate int

	Attack  float64
	Decay   float64
	Sustain float64
	Hold    float64
	Release float64

	LowPass    bool
	CutoffHz   float64
	Order      int
	Distortion bool
	Noise      bool
	Vibrato    bool
	Bits       int // 0 leaves the bit depth alone
	Seed       uint64

	Out      string
	Play     bool
	Pipe     bool
	PlayRate int
	Stats    bool
	Inspect  string
}

// Parse reads args (without the program name). Usage and errors go to
// output. flag.ErrHelp is returned as is for -h.
func Parse(name string, args []string, output io.Writer) (Options, error) {
	var o Options

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&o.Waveform, "waveform", "sine", "sine, square, sawtooth or noise")
	fs.Float64Var(&o.Frequency, "freq", 440, "frequency in Hz (100-2000)")
	fs.Float64Var(&o.Amplitude, "amp", 0.5, "amplitude (0.1-1.0)")
	fs.Float64Var(&o.DutyCycle, "duty", synth.DefaultDutyCycle, "square wave duty cycle, between 0 and 1")
	fs.Float64Var(&o.Duration, "duration", synth.DefaultDuration, "seconds, ignored for sine")
	fs.IntVar(&o.SampleRate, "rate", synth.DefaultSampleRate, "sample rate in Hz")

	env := synth.DefaultEnvelope()
	fs.Float64Var(&o.Attack, "attack", env.Attack, "envelope attack in seconds (0.1-5.0)")
	fs.Float64Var(&o.Decay, "decay", env.Decay, "envelope decay in seconds (0.1-5.0)")
	fs.Float64Var(&o.Sustain, "sustain", env.SustainLevel, "envelope sustain level (0.0-1.0)")
	fs.Float64Var(&o.Hold, "hold", holdFromSustain, "sustain hold in seconds (default: the sustain level)")
	fs.Float64Var(&o.Release, "release", env.Release, "envelope release in seconds (0.1-5.0)")

	fs.BoolVar(&o.LowPass, "lowpass", false, "apply the low-pass filter")
	fs.Float64Var(&o.CutoffHz, "cutoff", synth.DefaultCutoffHz, "low-pass cutoff in Hz (100-5000)")
	fs.IntVar(&o.Order, "order", synth.DefaultFilterOrder, "low-pass filter order")
	fs.BoolVar(&o.Distortion, "distortion", false, "apply tanh distortion")
	fs.BoolVar(&o.Noise, "noise", false, "replace the signal with white noise")
	fs.BoolVar(&o.Vibrato, "vibrato", false, "replace the signal with a vibrato sine")
	fs.IntVar(&o.Bits, "bits", 0, "requantize to 8 or 16 bits")
	fs.Uint64Var(&o.Seed, "seed", 0, "noise seed, 0 for a random one")

	fs.StringVar(&o.Out, "out", "", "write the result to a .wav or .aiff file, or - for WAV on stdout")
	fs.BoolVar(&o.Play, "play", false, "play the result on the default audio device")
	fs.BoolVar(&o.Pipe, "pipe", false, "write raw s16le mono PCM to stdout")
	fs.IntVar(&o.PlayRate, "play-rate", 0, "playback rate in Hz (default: -rate)")
	fs.BoolVar(&o.Stats, "stats", false, "print waveform statistics")
	fs.StringVar(&o.Inspect, "inspect", "", "print statistics for an existing audio file instead of rendering")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.Play && o.Pipe {
		return Options{}, errors.New("-play and -pipe are mutually exclusive")
	}
	if o.Pipe && o.WavToStdout() {
		return Options{}, errors.New("-pipe and -out - both write to stdout")
	}

	return o, nil
}

// StdoutOut is the -out value that streams WAV to stdout.
const StdoutOut = "-"

// WavToStdout reports whether -out asks for WAV on stdout.
func (o Options) WavToStdout() bool { return o.Out == StdoutOut }

// StdoutBusy reports whether stdout carries audio, so reports must go
// elsewhere.
func (o Options) StdoutBusy() bool { return o.Pipe || o.WavToStdout() }

// Envelope returns the ADSR settings, applying the -hold fallback.
func (o Options) Envelope() synth.Envelope {
	env := synth.NewEnvelope(o.Attack, o.Decay, o.Sustain, o.Release)
	if o.Hold != holdFromSustain {
		env.SustainHold = o.Hold
	}
	return env
}

// Request builds and validates the render request.
func (o Options) Request() (synth.Request, error) {
	waveform, err := synth.ParseWaveform(o.Waveform)
	if err != nil {
		return synth.Request{}, err
	}

	req := synth.NewRequest(waveform, o.Frequency, o.Amplitude)
	req.DutyCycle = o.DutyCycle
	req.Duration = o.Duration
	req.SampleRate = o.SampleRate
	req.Envelope = o.Envelope()
	req.Seed = o.Seed

	if o.LowPass {
		req.Effects = append(req.Effects, synth.LowPass{CutoffHz: o.CutoffHz, Order: o.Order})
	}
	if o.Distortion {
		req.Effects = append(req.Effects, synth.NewDistortion())
	}
	if o.Noise {
		req.Effects = append(req.Effects, synth.NewNoiseReplace(o.Amplitude))
	}
	if o.Vibrato {
		req.Effects = append(req.Effects, synth.NewVibrato())
	}
	if o.Bits != 0 {
		req.Effects = append(req.Effects, synth.NewBitDepth(o.Bits))
	}

	if err := req.Validate(); err != nil {
		return synth.Request{}, err
	}
	return req, nil
}

// OutputRate is the rate used for playback and piping.
func (o Options) OutputRate() int {
	if o.PlayRate > 0 {
		return o.PlayRate
	}
	return o.SampleRate
}
