// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder, so it
// needs no cgo or system libraries.
//
// # Supported Formats
//
// The decoder supports:
//   - Ogg Vorbis I streams
//   - Any channel count the stream declares
//   - Any sample rate
//
// # Decoding Ogg Files
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("pad.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// Vorbis decodes straight to float32, so samples pass through unchanged:
//   - Sample format: float32, nominally in [-1.0, 1.0]
//   - Channels: as declared by the stream, interleaved
//   - Sample rate: as declared by the stream
//
// The destination is trimmed to a whole number of frames before reading,
// so every call returns complete frames. A page that carries no audio
// yields (0, nil) rather than a premature io.EOF.
//
// # Errors
//
// Errors from the underlying reader are wrapped with a "vorbis:" prefix and
// can be inspected with errors.Is. A stream declaring no channels fails with
// audio.ErrInvalidChannels.
//
// # Limitations
//
// Note:
//   - Decoding only
//   - Chained streams with changing formats are not supported
package vorbis
