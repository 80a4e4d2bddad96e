// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"fmt"
	"math"
)

// DefaultSize is the table length used by the synth unless configured otherwise.
const DefaultSize = 1024

const tau = float32(2 * math.Pi)

var generators = map[Kind]func(size int) Table{
	Sine:     sine,
	Square:   square,
	Saw:      saw,
	Triangle: triangle,
}

// Generate builds one period of kind sampled at size points.
func Generate(kind Kind, size int) (Table, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%d: %w", size, ErrInvalidTableSize)
	}

	gen, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("%v: %w", kind, ErrUnknownKind)
	}

	return gen(size), nil
}

// MustGenerate is Generate for fixed, known-good arguments.
func MustGenerate(kind Kind, size int) Table {
	t, err := Generate(kind, size)
	if err != nil {
		panic(err)
	}

	return t
}

func sinAt(i, size int) float32 {
	through := float32(i) / float32(size)
	return float32(math.Sin(float64(through * tau)))
}

func sine(size int) Table {
	t := make(Table, size)
	for i := range t {
		t[i] = sinAt(i, size)
	}

	return t
}

func square(size int) Table {
	t := make(Table, size)
	for i := range t {
		if sinAt(i, size) >= 0 {
			t[i] = 1
		} else {
			t[i] = -1
		}
	}

	return t
}

// triangle rises from -1 to +1 over the first half and falls back over the
// second. With an odd size the final slot repeats the last falling value.
func triangle(size int) Table {
	half := size / 2
	t := make(Table, 0, size)

	if half == 0 {
		return append(t, -1)
	}

	for i := range half {
		t = append(t, float32(i)/float32(half)*2-1)
	}
	for i := range half {
		t = append(t, 1-float32(i)/float32(half)*2)
	}
	for len(t) < size {
		t = append(t, t[len(t)-1])
	}

	return t
}

// saw falls from +1 towards -1 without reaching it; the jump back to +1
// happens between the last sample and index 0.
func saw(size int) Table {
	t := make(Table, size)
	for i := range t {
		t[i] = 1 - float32(i)/float32(size)*2
	}

	return t
}
