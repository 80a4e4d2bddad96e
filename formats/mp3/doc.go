// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files and
// exposes them as an audio.Source, so an MP3 can seed a wave table the same
// way a WAV or AIFF file can.
//
// # Supported Formats
//
// The decoder supports:
//   - MPEG-1 and MPEG-2 Audio Layer 3
//   - Constant and variable bitrates
//   - Mono and stereo files (go-mp3 always outputs stereo)
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("cycle.mp3")
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
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0)
//   - Channels: 2 (mono files are duplicated onto both channels)
//   - Sample rate: the file's own rate, typically 44.1kHz or 48kHz
//
// ReadSamples only ever returns whole stereo frames. When the underlying
// reader stops in the middle of a frame, the leftover bytes are kept and
// delivered first on the next call.
//
// # Wave Tables From MP3
//
// wavetable.Load picks this decoder by extension once it is registered:
//
//	reg := audio.NewRegistry()
//	reg.Register("mp3", mp3.Decoder{})
//	table, err := wavetable.Load(reg, "cycles/organ.mp3", 1024)
//
// The stereo output is folded to mono and stretched to the table length on
// the way in.
//
// # Limitations
//
// Note:
//   - Decoding only; rendered audio is written with the wav package
//   - go-mp3 adds encoder delay at the start of the stream, so single cycle
//     files are better stored as WAV or AIFF
package mp3
