// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audsynth/pcm"
	"github.com/ik5/audsynth/synth"
)

// Encode writes buf as a mono 16-bit AIFF file.
func Encode(w io.WriteSeeker, buf synth.Buffer) error {
	if buf.SampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedSampleRate, buf.SampleRate)
	}

	enc := aiff.NewEncoder(w, buf.SampleRate, 16, 1)
	if err := enc.Write(pcm.IntBuffer(buf)); err != nil {
		return fmt.Errorf("writing aiff samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing aiff file: %w", err)
	}

	return nil
}
