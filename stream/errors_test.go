// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidDstSize, "dst size must be multiple of channels"},
		{ErrInvalidRate, "sample rate must be positive"},
		{ErrInvalidChannels, "channel count must be positive"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: got %d", ErrInvalidRate, 0)
	if !errors.Is(wrapped, ErrInvalidRate) {
		t.Error("errors.Is() failed for wrapped ErrInvalidRate")
	}
	if errors.Is(wrapped, ErrInvalidChannels) {
		t.Error("errors.Is() matched an unrelated sentinel")
	}
}
