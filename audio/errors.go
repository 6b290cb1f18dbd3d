// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrDimensionMismatch = errors.New("buffers must have equal length and sample rate")
)
