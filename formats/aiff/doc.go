// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to parse the container and
// the shared PCM reader in internal/pcm to turn integer samples into
// float32.
//
// # Supported Formats
//
// The decoder supports:
//   - Uncompressed AIFF
//   - 8, 16, 24 and 32-bit signed PCM
//   - Any channel count and sample rate
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("cycle.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// go-audio/aiff needs to seek. Readers that cannot, such as pipes or
// network streams, are read fully into memory first.
//
// # Output Format
//
// AIFF decoder output:
//   - Sample format: float32 in range [-1.0, 1.0)
//   - Channels: as stored in the file, interleaved
//   - Sample rate: as stored in the file
//
// Samples are scaled by the full range of their bit depth, so a 24-bit
// file and a 16-bit file of the same recording decode to the same values
// within the precision of the smaller depth.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotAiffFile: the input has no valid FORM/AIFF header
//   - ErrUnsupportedBitDepth: a bit depth other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: the file has no usable format information
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF file")
//	}
//
// # Performance
//
// The decoder reuses one integer buffer between reads, so steady state
// decoding does not allocate.
package aiff
