// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"slices"
)

// ReleaseTolerance is how far, in Hz, a note-off frequency may be from a
// voice's frequency and still release it.
const ReleaseTolerance float32 = 0.1

// Voice is one sounding note: its frequency in Hz and its oscillator
// position as a normalized phase in [0, 1).
type Voice struct {
	Frequency float32
	Phase     float32
}

type voiceSet []Voice

// on adds a voice at phase 0 unless one with exactly freq already exists.
func (vs *voiceSet) on(freq float32) bool {
	if slices.ContainsFunc(*vs, func(v Voice) bool { return v.Frequency == freq }) {
		return false
	}
	*vs = append(*vs, Voice{Frequency: freq})

	return true
}

// off removes every voice strictly closer than ReleaseTolerance to freq.
// Note that on matches exactly while off matches loosely, so one off can
// release several voices that on kept apart.
func (vs *voiceSet) off(freq float32) int {
	before := len(*vs)
	*vs = slices.DeleteFunc(*vs, func(v Voice) bool {
		return float32(math.Abs(float64(v.Frequency-freq))) < ReleaseTolerance
	})

	return before - len(*vs)
}

// advance moves phase forward by inc and wraps it into [0, 1).
func advance(phase, inc float32) float32 {
	p := float32(math.Mod(float64(phase+inc), 1))
	if p >= 1 || p < 0 {
		return 0
	}

	return p
}
