// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrInvalidRate     = errors.New("sample rate must be positive")
	ErrInvalidChannels = errors.New("channel count must be positive")
)
