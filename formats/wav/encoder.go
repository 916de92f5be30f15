// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audsynth/pcm"
	"github.com/ik5/audsynth/synth"
)

// Encode writes buf as a mono 16-bit PCM WAV. The encoder seeks back to
// patch the chunk sizes, so w is usually an *os.File; use Write for plain
// writers.
func Encode(w io.WriteSeeker, buf synth.Buffer) error {
	if buf.SampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedSampleRate, buf.SampleRate)
	}

	enc := gowav.NewEncoder(w, buf.SampleRate, 16, 1, wavFormatPCM)
	if err := enc.Write(pcm.IntBuffer(buf)); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}

	return nil
}
