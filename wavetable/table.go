// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"math"
	"slices"

	"github.com/ik5/wavsynth/utils"
)

// Table is one period of a waveform. Index 0 is phase 0.0 and the last index
// is just under phase 1.0. A Table handed to the synth must not be modified
// afterwards; build a new one instead.
type Table []float32

// Len is the number of samples in one period.
func (t Table) Len() int { return len(t) }

// Index maps a normalized phase to the nearest-lower table index,
// floor(phase*(L-1)), clamped to [0, L-1].
func (t Table) Index(phase float32) int {
	last := len(t) - 1
	i := int(phase * float32(last))
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}

	return i
}

// Lookup reads the table at a normalized phase without interpolation.
func (t Table) Lookup(phase float32) float32 {
	return t[t.Index(phase)]
}

// Lerp reads the table at a non-normalized index position, blending
// t[floor(index)] and t[ceil(index)] by the fractional part. Positions
// outside [0, L-1] are clamped.
func (t Table) Lerp(index float32) float32 {
	last := float32(len(t) - 1)
	if index <= 0 || math.IsNaN(float64(index)) {
		return t[0]
	}
	if index >= last {
		return t[len(t)-1]
	}

	lo := math.Floor(float64(index))
	hi := math.Ceil(float64(index))
	frac := index - float32(lo)

	return utils.Lerp(t[int(lo)], t[int(hi)], frac)
}

// Peak is the largest absolute sample value.
func (t Table) Peak() float32 {
	var peak float32
	for _, v := range t {
		peak = max(peak, float32(math.Abs(float64(v))))
	}

	return peak
}

// Equal reports whether both tables have the same length and every sample
// differs by no more than tolerance.
func (t Table) Equal(o Table, tolerance float32) bool {
	return slices.EqualFunc(t, o, func(a, b float32) bool {
		return float32(math.Abs(float64(a-b))) <= tolerance
	})
}

// Clone returns an independent copy, useful when deriving a new table.
func (t Table) Clone() Table {
	return slices.Clone(t)
}
