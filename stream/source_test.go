// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/audsynth/internal/synthtest"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return synthtest.NewSilentSource(44100, 2, 100), nil
}

type failingDecoder struct{}

func (failingDecoder) Decode(io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_KeysAreNormalized(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "ogg"}
	registry.Register("OGG", decoder)

	for _, key := range []string{"ogg", ".ogg", "Ogg", ".OGG"} {
		if got, ok := registry.Get(key); !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v; want registered decoder", key, got, ok)
		}
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	if _, ok := NewRegistry().Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{name: "first"})
	second := &mockDecoder{name: "second"}
	registry.Register("wav", second)

	got, _ := registry.Get("wav")
	if got != second {
		t.Error("Registry.Register() did not replace the existing decoder")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})
	registry.Register("mp3", failingDecoder{})

	got := registry.Formats()
	slices.Sort(got)
	if !slices.Equal(got, []string{"mp3", "wav"}) {
		t.Errorf("Registry.Formats() = %v, want [mp3 wav]", got)
	}
}

func TestRegistry_FailingDecoder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("bad", failingDecoder{})

	dec, _ := registry.Get("bad")
	if _, err := dec.Decode(nil); err == nil {
		t.Error("Decode() error = nil, want error")
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				registry.Register("wav", &mockDecoder{})
				return
			}
			_, _ = registry.Get("wav")
		}()
	}

	wg.Wait()

	if _, ok := registry.Get("wav"); !ok {
		t.Error("Registry.Get() after concurrent registration failed")
	}
}
