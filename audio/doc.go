// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the synthesizer,
// the format decoders and the bounce pipeline.
//
// This package contains:
//   - Source interface for pull-based interleaved float32 streams
//   - Resampler for sample rate conversion and fit-to-length stretching
//   - MonoMixer for channel folding
//   - BufferSource and ReadAll for in-memory streams
//   - Registry for decoder lookup by format key or file extension
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// A running synth.Synth is exposed as a Source by synth.NewSource, and every
// decoder under formats/ returns one, so the same pipeline serves both
// rendering and importing.
//
// # Resampling
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// NewFitResampler stretches a known number of source frames onto an exact
// number of output frames. wavetable.FromSource uses it to turn a recorded
// single cycle into a table of fixed length.
//
// # Channel Mixing
//
// The MonoMixer folds any channel count to mono by averaging each frame:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// The bounce pipeline and table import both mix down before resampling.
//
// # Format Registry
//
// The registry maps format keys to decoders, case-insensitively:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("ogg", vorbis.Decoder{})
//	decoder, err := registry.ForPath("pads/Warm.WAV")
//
// ForPath returns ErrUnsupportedFormat for a missing or unknown extension.
// Formats lists the registered keys, which is handy for flag help text.
//
// # In-Memory Streams
//
// BufferSource replays a slice of samples and ReadAll drains any Source
// into one:
//
//	samples, err := audio.ReadAll(source)
//	replay, _ := audio.NewBufferSource(samples, source.SampleRate(), source.Channels())
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0], interleaved by channel. ReadSamples
// counts float32 values, not frames, except for MonoMixer where the two are
// the same.
//
// # Performance Considerations
//
// Resampler, MonoMixer and BufferSource allocate their working buffers once
// and reuse them, so a steady stream does not allocate:
//   - Reuse the destination buffer between ReadSamples calls
//   - Size it as a multiple of the channel count
//   - Stream instead of calling ReadAll for long inputs
//
// # Error Handling
//
// io.EOF marks the end of a stream and may arrive together with the last
// samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
