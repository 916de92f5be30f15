// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"
	"strings"
	"sync"
)

// Source is a pull-based stream of interleaved samples in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (1 = mono, 2 = stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns how many
	// values (not frames) were written. n == 0 with io.EOF ends the stream.
	ReadSamples(dst []float64) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder turns an encoded file into a Source.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps a format key such as "wav" or "ogg" to its Decoder. Keys are
// case-insensitive and a leading dot is ignored, so file extensions can be
// used directly.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

func registryKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[registryKey(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[registryKey(format)]
	return d, ok
}

// Formats lists the registered keys in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	return keys
}
