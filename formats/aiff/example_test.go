// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audsynth/formats/aiff"
	"github.com/ik5/audsynth/internal/synthtest"
	"github.com/ik5/audsynth/stream"
	"github.com/ik5/audsynth/synth"
)

// Example writes a short tone as AIFF and reads it back.
func Example() {
	buf, _ := synth.SineWave(440, 0.5, 0.5, 22050)

	var ws synthtest.WriteSeeker
	if err := aiff.Encode(&ws, buf); err != nil {
		fmt.Println(err)
		return
	}

	src, err := aiff.Decoder{}.Decode(bytes.NewReader(ws.Bytes()))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Sample Rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())

	decoded, _ := stream.Collect(src)
	fmt.Printf("Samples: %d\n", decoded.Len())

	// Output:
	// Sample Rate: 22050 Hz
	// Channels: 1
	// Samples: 11025
}

// ExampleDecoder_Decode_errorHandling shows the error for data that is not
// AIFF at all.
func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	fmt.Println(err)
	// Output: not an AIFF file
}
