// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding and Encode use github.com/go-audio/wav. WriteWAV16 writes the
// canonical 44 byte header itself so it can stream to writers that cannot
// seek, such as os.Stdout.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM at 8, 16, 24 and 32 bits for decoding
//   - Integer PCM at 16, 24 and 32 bits for encoding
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("cycle.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples come out as float32 in [-1.0, 1.0). 8-bit WAV data is unsigned
// and is re-centred around zero before scaling.
//
// # Encoding a Source
//
// Encode drains any audio.Source, including a running synth, into a file:
//
//	s := synth.New()
//	s.On(440)
//	src, _ := synth.NewSource(s, 48000, 2, 48000)
//
//	file, _ := os.Create("a4.wav")
//	defer file.Close()
//	frames, err := wav.Encode(file, src, 24)
//
// The encoder patches the chunk sizes when it finishes, which is why the
// destination has to be an io.WriteSeeker.
//
// # Streaming 16-bit Output
//
// WriteWAV16 takes interleaved int16 samples and needs only an io.Writer:
//
//	pcm, _ := wavsynth.Bounce(s, wavsynth.BounceConfig{
//	    SampleRate: 44100,
//	    Duration:   2 * time.Second,
//	})
//	err := wav.WriteWAV16(os.Stdout, 44100, 1, pcm)
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input has no valid RIFF/WAVE header
//   - ErrUnsupportedWavLayout: a non-PCM format tag or missing format chunk
//   - ErrUnsupportedBitDepth: a bit depth the decoder or encoder cannot use
//   - ErrInvalidChannels: a non-positive channel count
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # File Format
//
// WAV files written by WriteWAV16 consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: little-endian interleaved samples
package wav
