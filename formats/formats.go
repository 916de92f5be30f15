// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audsynth/formats/aiff"
	"github.com/ik5/audsynth/formats/flac"
	"github.com/ik5/audsynth/formats/mp3"
	"github.com/ik5/audsynth/formats/vorbis"
	"github.com/ik5/audsynth/formats/wav"
	"github.com/ik5/audsynth/stream"
	"github.com/ik5/audsynth/synth"
)

// Default returns a registry with every decoder in this module, keyed by
// the usual file extensions.
func Default() *stream.Registry {
	reg := stream.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

func extension(path string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s", ErrNoExtension, path)
	}
	return strings.ToLower(ext), nil
}

// LoadReader decodes r as format with reg and mixes it down to a mono
// buffer at the file's own sample rate.
func LoadReader(reg *stream.Registry, format string, r io.Reader) (synth.Buffer, error) {
	dec, ok := reg.Get(format)
	if !ok {
		return synth.Buffer{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return synth.Buffer{}, fmt.Errorf("decoding %s: %w", format, err)
	}

	return stream.Collect(src)
}

// Load decodes the file at path, picking the decoder from its extension.
func Load(path string) (synth.Buffer, error) {
	ext, err := extension(path)
	if err != nil {
		return synth.Buffer{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return synth.Buffer{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return LoadReader(Default(), ext, f)
}

// Save writes buf as 16-bit mono PCM. The container follows the extension:
// .wav/.wave or .aif/.aiff.
func Save(path string, buf synth.Buffer) (err error) {
	ext, err := extension(path)
	if err != nil {
		return err
	}

	var encode func(io.WriteSeeker, synth.Buffer) error
	switch ext {
	case "wav", "wave":
		encode = wav.Encode
	case "aif", "aiff":
		encode = aiff.Encode
	default:
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	return encode(f, buf)
}
