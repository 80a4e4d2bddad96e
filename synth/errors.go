// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrEmptyTable        = errors.New("wave table is empty")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
