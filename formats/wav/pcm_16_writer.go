// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audsynth/pcm"
	"github.com/ik5/audsynth/synth"
)

// canonicalHeader is the 44-byte RIFF/WAVE header of a PCM file with a
// single fmt chunk followed by the data chunk.
type canonicalHeader struct {
	Riff          [4]byte
	RiffSize      uint32
	Wave          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Data          [4]byte
	DataSize      uint32
}

const headerSize = 44

// chunkSamples bounds the scratch buffer used while streaming samples.
const chunkSamples = 4096

// Write streams buf as a mono 16-bit PCM WAV. Unlike Encode it never seeks,
// so it works on pipes and network connections.
func Write(w io.Writer, buf synth.Buffer) error {
	return WriteWAV16(w, buf.SampleRate, pcm.ToInt16(buf))
}

// WriteWAV16 writes samples as a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedSampleRate, sampleRate)
	}

	dataSize := uint64(len(samples)) * 2
	if dataSize > math.MaxUint32-(headerSize-8) {
		return fmt.Errorf("%w: %d bytes", ErrDataTooLarge, dataSize)
	}

	hdr := canonicalHeader{
		Riff:          [4]byte{'R', 'I', 'F', 'F'},
		RiffSize:      uint32(headerSize - 8 + dataSize),
		Wave:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   wavFormatPCM,
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * 2,
		BlockAlign:    2,
		BitsPerSample: 16,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      uint32(dataSize),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	scratch := make([]byte, 0, 2*min(len(samples), chunkSamples))
	for len(samples) > 0 {
		n := min(len(samples), chunkSamples)

		scratch = scratch[:0]
		for _, s := range samples[:n] {
			scratch = binary.LittleEndian.AppendUint16(scratch, uint16(s))
		}
		if _, err := w.Write(scratch); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}

		samples = samples[n:]
	}

	return nil
}
