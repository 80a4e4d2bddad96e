// SPDX-License-Identifier: EPL-2.0

package keyboard

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/wavsynth/synth"
	"github.com/ik5/wavsynth/wavetable"
)

type event struct {
	op   string
	freq float32
	kind wavetable.Kind
}

type recorder struct {
	events  []event
	waveErr error
}

func (r *recorder) On(f float32)  { r.events = append(r.events, event{op: "on", freq: f}) }
func (r *recorder) Off(f float32) { r.events = append(r.events, event{op: "off", freq: f}) }

func (r *recorder) ChangeWave(k wavetable.Kind) error {
	r.events = append(r.events, event{op: "wave", kind: k})
	return r.waveErr
}

func TestDefaultLayout(t *testing.T) {
	t.Parallel()

	if len(DefaultLayout) != 16 {
		t.Errorf("len(DefaultLayout) = %d, want 16", len(DefaultLayout))
	}

	tests := []struct {
		key  Key
		freq float32
	}{
		{'A', 261.63}, {'H', 440.00}, {'L', 587.33},
		{'W', 277.18}, {'P', 622.25},
	}
	for _, tt := range tests {
		if f, ok := DefaultLayout.Frequency(tt.key); !ok || f != tt.freq {
			t.Errorf("Frequency(%v) = %v, %v, want %v", tt.key, f, ok, tt.freq)
		}
	}

	for _, k := range []Key{'R', 'I', 'Z', '1'} {
		if _, ok := DefaultLayout.Frequency(k); ok {
			t.Errorf("Frequency(%v) mapped, want unmapped", k)
		}
	}
}

func TestDefaultLayout_Ascending(t *testing.T) {
	t.Parallel()

	// chromatic order across both rows
	order := []Key{'A', 'W', 'S', 'E', 'D', 'F', 'T', 'G', 'Y', 'H', 'U', 'J', 'K', 'O', 'L', 'P'}
	freqs := make([]float32, len(order))
	for i, k := range order {
		freqs[i] = DefaultLayout[k]
	}
	if !slices.IsSorted(freqs) {
		t.Errorf("layout not chromatic: %v", freqs)
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Key
		ok   bool
	}{
		{"a", 'A', true},
		{"A", 'A', true},
		{" 3 ", '3', true},
		{"", 0, false},
		{"ab", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKey(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTracker_SuppressesRepeats(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	if !tr.Press('A') {
		t.Error("first Press = false")
	}
	for range 5 {
		if tr.Press('A') {
			t.Fatal("repeat Press = true")
		}
	}
	if !tr.Press('S') {
		t.Error("Press of another key = false")
	}
	if tr.Held() != 2 {
		t.Errorf("Held() = %d, want 2", tr.Held())
	}

	if !tr.Release('A') {
		t.Error("Release of held key = false")
	}
	if tr.Release('A') {
		t.Error("second Release = true")
	}
	if !tr.Press('A') {
		t.Error("Press after release = false")
	}
}

func TestPlayer_Events(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	p := NewPlayer(rec, nil)

	_ = p.Press('H')
	_ = p.Press('H') // auto-repeat
	_ = p.Press('R') // unmapped
	_ = p.Press('2')
	p.Release('2')
	p.Release('H')
	p.Release('K') // never pressed

	want := []event{
		{op: "on", freq: 440},
		{op: "wave", kind: wavetable.Square},
		{op: "off", freq: 440},
		{op: "off", freq: 523.25},
	}
	if !slices.Equal(rec.events, want) {
		t.Errorf("events = %+v, want %+v", rec.events, want)
	}
	if p.Held() != 1 {
		// 'R' is still down
		t.Errorf("Held() = %d, want 1", p.Held())
	}
}

func TestPlayer_WaveError(t *testing.T) {
	t.Parallel()

	errWave := errors.New("no table")
	p := NewPlayer(&recorder{waveErr: errWave}, nil)

	if err := p.Press('4'); !errors.Is(err, errWave) {
		t.Errorf("Press('4') error = %v, want %v", err, errWave)
	}
}

func TestPlayer_DrivesSynth(t *testing.T) {
	t.Parallel()

	s := synth.New()
	p := NewPlayer(s, nil)

	for _, k := range []Key{'A', 'D', 'G', 'A'} {
		_ = p.Press(k)
	}
	if s.VoiceCount() != 3 {
		t.Errorf("VoiceCount() = %d, want 3", s.VoiceCount())
	}

	_ = p.Press('3')
	if kind, _ := s.Wave(); kind != wavetable.Saw {
		t.Errorf("Wave() = %v, want saw", kind)
	}

	for _, k := range []Key{'A', 'D', 'G'} {
		p.Release(k)
	}
	if s.VoiceCount() != 0 {
		t.Errorf("VoiceCount() = %d, want 0", s.VoiceCount())
	}
}
