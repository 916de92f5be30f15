// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrDegenerateEnvelope  = errors.New("envelope has no length")
)
