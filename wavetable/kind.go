// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"fmt"
	"strings"
)

// Kind selects one of the built-in waveform shapes.
type Kind int

const (
	Sine Kind = iota
	Square
	Saw
	Triangle
)

// Kinds lists every built-in kind in declaration order.
var Kinds = []Kind{Sine, Square, Saw, Triangle}

func (k Kind) String() string {
	switch k {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Saw:
		return "saw"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the names returned by String, case-insensitively,
// plus the short forms "sin", "sqr", "sawtooth" and "tri".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sine", "sin":
		return Sine, nil
	case "square", "sqr":
		return Square, nil
	case "saw", "sawtooth":
		return Saw, nil
	case "triangle", "tri":
		return Triangle, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Set implements flag.Value.
func (k *Kind) Set(s string) error {
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
