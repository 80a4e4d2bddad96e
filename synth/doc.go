// SPDX-License-Identifier: EPL-2.0

// Package synth is a polyphonic wavetable synthesizer core.
//
// A Synth holds one wave table and a set of voices. Each voice is a
// frequency and a normalized phase; rendering reads the table at every
// voice's phase (nearest-lower index, no interpolation), averages the
// results, applies a fixed gain of 0.3 and advances each phase by
// frequency/sampleRate modulo 1.
//
//	s := synth.New()        // 1024 point sine, no voices
//	s.On(440)               // A4
//	s.On(554.37)            // C#5
//	buf := make([]float32, 512*2)
//	s.Render(buf, 2, 48000) // 512 stereo frames
//	s.Off(440)
//
// # Note Matching
//
// On ignores a frequency that already sounds exactly; Off releases every
// voice within 0.1 Hz. The two rules differ on purpose: note-off frequencies
// often arrive after a different float computation than the note-on.
//
// # Concurrency
//
// One goroutine usually feeds note events while the audio device calls
// Render from its own. Render takes the voice lock once per buffer and never
// allocates. Tables are swapped atomically, so ChangeWave and SetTable never
// wait on the renderer.
//
// # Streaming
//
// NewSource wraps a Synth as an audio.Source for offline rendering:
//
//	src, _ := synth.NewSource(s, 44100, 1, 44100) // one second
//	pcm, _, _ := wavsynth.ToMono16(src, 44100, 4096)
package synth
