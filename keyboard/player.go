// SPDX-License-Identifier: EPL-2.0

package keyboard

import (
	"github.com/ik5/wavsynth/wavetable"
)

// Instrument is what key events drive. *synth.Synth satisfies it.
type Instrument interface {
	On(freq float32)
	Off(freq float32)
	ChangeWave(kind wavetable.Kind) error
}

// Player turns raw key events into notes and waveform changes.
type Player struct {
	inst    Instrument
	layout  Layout
	tracker *Tracker
}

// NewPlayer plays inst with layout; a nil layout uses DefaultLayout.
func NewPlayer(inst Instrument, layout Layout) *Player {
	if layout == nil {
		layout = DefaultLayout
	}

	return &Player{
		inst:    inst,
		layout:  layout,
		tracker: NewTracker(),
	}
}

// Press handles a key-down event, including auto-repeats. It returns an
// error only when a wave key fails to switch the table.
func (p *Player) Press(k Key) error {
	if !p.tracker.Press(k) {
		return nil
	}

	if kind, ok := WaveKeys[k]; ok {
		return p.inst.ChangeWave(kind)
	}
	if f, ok := p.layout.Frequency(k); ok {
		p.inst.On(f)
	}

	return nil
}

// Release handles a key-up event. A note key always sends Off, even if the
// press was never seen, so a note cannot get stuck after focus changes.
func (p *Player) Release(k Key) {
	p.tracker.Release(k)

	if f, ok := p.layout.Frequency(k); ok {
		p.inst.Off(f)
	}
}

// Held is the number of keys currently down.
func (p *Player) Held() int { return p.tracker.Held() }
