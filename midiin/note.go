// SPDX-License-Identifier: EPL-2.0

package midiin

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNote is returned by ParseNote.
var ErrInvalidNote = errors.New("invalid note")

// NoteFrequency is the equal-tempered frequency of a MIDI key, A4 (69) at
// 440 Hz.
func NoteFrequency(key uint8) float32 {
	return float32(440 * math.Pow(2, (float64(key)-69)/12))
}

var pitchClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName is the scientific pitch name of key, with middle C (60) as C4.
func NoteName(key uint8) string {
	return fmt.Sprintf("%s%d", noteNames[key%12], int(key)/12-1)
}

// ParseNote reads a frequency given either in Hz ("440", "261.63") or as a
// note name with optional sharp or flat and octave ("A4", "c#5", "Eb3").
// A missing octave means octave 4.
func ParseNote(s string) (float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNote
	}

	if f, err := strconv.ParseFloat(s, 32); err == nil {
		if !(f > 0) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%q: %w", s, ErrInvalidNote)
		}
		return float32(f), nil
	}

	class, ok := pitchClass[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNote)
	}
	rest := s[1:]

	switch {
	case strings.HasPrefix(rest, "#"):
		class++
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		class--
		rest = rest[1:]
	}

	octave := 4
	if rest != "" {
		o, err := strconv.Atoi(rest)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrInvalidNote)
		}
		octave = o
	}

	key := (octave+1)*12 + class
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("%q out of MIDI range: %w", s, ErrInvalidNote)
	}

	return NoteFrequency(uint8(key)), nil
}

// ParseNotes splits a comma separated list and parses every entry.
func ParseNotes(list string) ([]float32, error) {
	var out []float32
	for field := range strings.SplitSeq(list, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		f, err := ParseNote(field)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}
