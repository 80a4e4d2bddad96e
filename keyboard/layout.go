// SPDX-License-Identifier: EPL-2.0

package keyboard

import (
	"strings"
	"unicode"

	"github.com/ik5/wavsynth/wavetable"
)

// Key is a physical key named by its unshifted US layout character, always
// upper case for letters ('A', 'W', '1').
type Key rune

// ParseKey accepts a single character such as "a", "A" or "1".
func ParseKey(s string) (Key, bool) {
	r := []rune(strings.TrimSpace(s))
	if len(r) != 1 {
		return 0, false
	}

	return Key(unicode.ToUpper(r[0])), true
}

func (k Key) String() string { return string(rune(k)) }

// Layout maps keys to note frequencies in Hz.
type Layout map[Key]float32

// DefaultLayout is a piano laid over the home row. White keys sit on
// A through L (C4 to D5) and black keys on the row above; R and I have no
// black key to play, like E-F and B-C on a piano.
var DefaultLayout = Layout{
	'A': 261.63, // C4
	'S': 293.66, // D4
	'D': 329.63, // E4
	'F': 349.23, // F4
	'G': 392.00, // G4
	'H': 440.00, // A4
	'J': 493.88, // B4
	'K': 523.25, // C5
	'L': 587.33, // D5

	'W': 277.18, // C#4
	'E': 311.13, // D#4
	'T': 369.99, // F#4
	'Y': 415.30, // G#4
	'U': 466.16, // A#4
	'O': 554.37, // C#5
	'P': 622.25, // D#5
}

// Frequency of k, if it plays a note.
func (l Layout) Frequency(k Key) (float32, bool) {
	f, ok := l[k]
	return f, ok
}

// WaveKeys selects a waveform from the number row.
var WaveKeys = map[Key]wavetable.Kind{
	'1': wavetable.Sine,
	'2': wavetable.Square,
	'3': wavetable.Saw,
	'4': wavetable.Triangle,
}
