// SPDX-License-Identifier: EPL-2.0

package synth

// Render fills buf with interleaved frames of channels samples at
// sampleRate. Every channel of a frame gets the same mixed sample. A
// trailing partial frame is zeroed, and an invalid channel count or sample
// rate yields silence without advancing any voice.
//
// Render holds the voice lock for the whole buffer and does not allocate.
func (s *Synth) Render(buf []float32, channels, sampleRate int) {
	if channels <= 0 || sampleRate <= 0 {
		clear(buf)
		return
	}

	table := s.current.Load().table
	last := float32(len(table) - 1)
	rate := float32(sampleRate)
	frames := len(buf) / channels

	s.mu.Lock()
	defer s.mu.Unlock()

	voices := s.voices
	if len(voices) == 0 {
		clear(buf)
		return
	}
	count := float32(len(voices))

	for f := range frames {
		var sum float32
		for i := range voices {
			v := &voices[i]

			idx := int(v.Phase * last)
			if idx < 0 {
				idx = 0
			} else if idx >= len(table) {
				idx = len(table) - 1
			}
			sum += table[idx]

			v.Phase = advance(v.Phase, v.Frequency/rate)
		}

		out := (sum / count) * Gain
		frame := buf[f*channels : (f+1)*channels]
		for c := range frame {
			frame[c] = out
		}
	}

	clear(buf[frames*channels:])
}
