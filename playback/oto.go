// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audsynth/synth"
)

// pollInterval is how often Play checks whether the device drained.
const pollInterval = 10 * time.Millisecond

// Oto plays buffers on the default audio device through oto. oto allows a
// single context per process, so create one Oto and reuse it.
type Oto struct {
	ctx  *oto.Context
	rate int
}

// NewOto opens the device at rate as mono signed 16-bit and waits until it
// is ready.
func NewOto(rate int) (*Oto, error) {
	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready

	return &Oto{ctx: ctx, rate: rate}, nil
}

func (o *Oto) SampleRate() int { return o.rate }

// Play resamples buf to the device rate and blocks until it has been played
// or ctx is done, in which case playback stops and ctx.Err is returned.
func (o *Oto) Play(ctx context.Context, buf synth.Buffer) error {
	samples, err := Prepare(buf, o.rate)
	if err != nil {
		return err
	}

	player := o.ctx.NewPlayer(bytes.NewReader(Encode16LE(samples)))
	defer player.Close()

	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if err := o.ctx.Err(); err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	return nil
}

// Close suspends the device. The oto context itself lives until the
// process exits.
func (o *Oto) Close() error {
	if err := o.ctx.Suspend(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
