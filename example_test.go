// SPDX-License-Identifier: EPL-2.0

package wavsynth_test

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ik5/wavsynth"
	"github.com/ik5/wavsynth/formats/wav"
	"github.com/ik5/wavsynth/synth"
	"github.com/ik5/wavsynth/wavetable"
)

// Example_chord renders a C major chord and writes it as a WAV file.
func Example_chord() {
	s := synth.New()
	s.On(261.63)
	s.On(329.63)
	s.On(392.00)

	pcm, err := wavsynth.Bounce(s, wavsynth.BounceConfig{
		SampleRate: 8000,
		Duration:   250 * time.Millisecond,
	})
	if err != nil {
		fmt.Println("bounce:", err)
		return
	}

	// in real code, use os.Create
	out := new(bytes.Buffer)
	if err := wav.WriteWAV16(out, 8000, 1, pcm); err != nil {
		fmt.Println("write:", err)
		return
	}

	fmt.Printf("%d samples, %d bytes\n", len(pcm), out.Len())
	// Output: 2000 samples, 4044 bytes
}

// Example_waveforms shows that switching the waveform keeps the voices
// sounding.
func Example_waveforms() {
	s := synth.New()
	s.On(440)

	for _, kind := range wavetable.Kinds {
		if err := s.ChangeWave(kind); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s: %d voice\n", kind, s.VoiceCount())
	}
	// Output:
	// sine: 1 voice
	// square: 1 voice
	// saw: 1 voice
	// triangle: 1 voice
}

// Example_silence shows that a synth with no voices renders exact zeros.
func Example_silence() {
	buf := []float32{1, 1, 1, 1}
	synth.New().Render(buf, 2, 48000)

	fmt.Println(buf)
	// Output: [0 0 0 0]
}
