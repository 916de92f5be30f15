// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audsynth/stream"
)

const wavFormatPCM = 1

// Decoder reads integer PCM WAV files of any bit depth go-audio handles.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (stream.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek between chunks
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}
	ib.SourceBitDepth = int(dec.BitDepth)

	// 8-bit WAV is unsigned
	if dec.BitDepth == 8 {
		for i, v := range ib.Data {
			ib.Data[i] = v - 128
		}
	}

	return stream.NewIntBufferSource(ib)
}
