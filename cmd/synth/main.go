// SPDX-License-Identifier: EPL-2.0

// Command synth renders a single tone from flags and writes, plays or
// describes it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/audsynth/formats"
	"github.com/ik5/audsynth/formats/wav"
	"github.com/ik5/audsynth/internal/cli"
	"github.com/ik5/audsynth/playback"
	"github.com/ik5/audsynth/synth"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("synth: ")

	opts, err := cli.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Printf("%v", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// keep stdout clean when it carries audio
	var report io.Writer = os.Stdout
	if opts.StdoutBusy() {
		report = os.Stderr
	}

	if err := run(ctx, opts, report); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, opts cli.Options, report io.Writer) error {
	var (
		buf   synth.Buffer
		label string
		err   error
	)

	if opts.Inspect != "" {
		label = opts.Inspect
		buf, err = formats.Load(opts.Inspect)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", opts.Inspect, err)
		}
		// inspection always reports
		opts.Stats = true
	} else {
		req, err := opts.Request()
		if err != nil {
			return err
		}

		label = req.Waveform.String()
		buf, err = synth.Render(req)
		if err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
		log.Printf("rendered %s %.1f Hz: %d samples @ %d Hz", req.Waveform, req.Frequency, buf.Len(), buf.SampleRate)
	}

	if opts.Stats {
		if _, err := io.WriteString(report, cli.FormatStats(label, buf)); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	switch {
	case opts.WavToStdout():
		if err := wav.Write(os.Stdout, buf); err != nil {
			return fmt.Errorf("streaming wav: %w", err)
		}
	case opts.Out != "":
		if err := formats.Save(opts.Out, buf); err != nil {
			return fmt.Errorf("saving %s: %w", opts.Out, err)
		}
		log.Printf("wrote %s", opts.Out)
	}

	sink, err := openSink(opts, buf.SampleRate)
	if err != nil || sink == nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Printf("closing output: %v", err)
		}
	}()

	if err := sink.Play(ctx, buf); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("playing: %w", err)
	}
	return nil
}

// openSink returns nil when neither -play nor -pipe was given.
func openSink(opts cli.Options, bufRate int) (playback.Sink, error) {
	rate := opts.OutputRate()
	if opts.Inspect != "" && opts.PlayRate == 0 {
		rate = bufRate
	}

	switch {
	case opts.Play:
		o, err := playback.NewOto(rate)
		if err != nil {
			return nil, fmt.Errorf("opening audio device: %w", err)
		}
		log.Printf("playing at %d Hz", rate)
		return o, nil
	case opts.Pipe:
		log.Printf("streaming s16le mono at %d Hz to stdout", rate)
		return playback.NewWriterSink(os.Stdout, rate), nil
	}
	return nil, nil
}
