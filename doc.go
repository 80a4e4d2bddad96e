// SPDX-License-Identifier: EPL-2.0

// Package wavsynth is a small polyphonic wavetable synthesizer.
//
// The core lives in two packages:
//   - wavetable builds single-period waveform tables (sine, square, saw,
//     triangle) and imports custom tables from any decodable audio file
//   - synth keeps the set of sounding voices and renders them into
//     interleaved float32 buffers
//
// Around the core the repository ships the pieces needed to actually play
// it: device (oto, portaudio or a headless clock), keyboard and midiin for
// note input, formats/* for reading and writing audio files, and spectrum
// for checking what came out.
//
// # Quick Start
//
//	s := synth.New()
//	s.On(440)
//
//	buf := make([]float32, 512*2)
//	s.Render(buf, 2, 48000) // stereo, 48kHz
//
// Render is normally called from the audio callback while On, Off and
// ChangeWave are called from the input goroutine.
//
// # Offline Rendering
//
// Bounce renders the current voices to 16-bit mono PCM which can be written
// with wav.WriteWAV16:
//
//	s := synth.New()
//	s.On(261.63)
//	s.On(329.63)
//	s.On(392.00)
//
//	pcm, _ := wavsynth.Bounce(s, wavsynth.BounceConfig{
//		SampleRate: 44100,
//		Duration:   2 * time.Second,
//	})
//	f, _ := os.Create("chord.wav")
//	wav.WriteWAV16(f, 44100, 1, pcm)
//
// ToMono16 is the same pipeline for any audio.Source, for example a decoded
// file that has to be brought to a fixed rate.
//
// # Custom Tables
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	table, _ := wavetable.Load(reg, "cycle.wav", 1024)
//	s.SetTable(table)
package wavsynth
