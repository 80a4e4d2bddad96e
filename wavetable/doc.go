// SPDX-License-Identifier: EPL-2.0

// Package wavetable builds and reads single-period waveform tables.
//
// A Table holds one period of a waveform sampled at a fixed number of
// points. Index 0 corresponds to phase 0.0 and the last index to a phase just
// under 1.0. Tables are treated as immutable values: switching waveform means
// building a new Table, never rewriting one in place.
//
// # Built-in Shapes
//
//	sine, _ := wavetable.Generate(wavetable.Sine, 1024)
//	square := wavetable.MustGenerate(wavetable.Square, 1024)
//
// The four kinds are Sine, Square, Triangle and Saw. Sine, Square and
// Triangle stay within [-1, 1]. Saw descends from +1 and never quite reaches
// -1, so it spans (-1, 1] with a jump at the wrap point.
//
// # Reading
//
// Lookup maps a normalized phase to floor(phase*(L-1)); this is what the
// synth renders with. Lerp interpolates linearly at a raw index position and
// is offered for callers that want smoother reads.
//
// # Importing
//
// FromSource and Load turn a recorded single cycle (any format registered in
// an audio.Registry) into a Table of the requested length.
package wavetable
