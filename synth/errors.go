// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrUnknownNoiseKind = errors.New("unknown noise kind")
)
