// SPDX-License-Identifier: EPL-2.0

package wavetable

import "errors"

var (
	ErrInvalidTableSize = errors.New("table size must be positive")
	ErrUnknownKind      = errors.New("unknown waveform kind")
	ErrEmptySource      = errors.New("source produced no samples")
)
