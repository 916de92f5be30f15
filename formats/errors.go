// SPDX-License-Identifier: EPL-2.0

package formats

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoExtension       = errors.New("file name has no extension")
)
