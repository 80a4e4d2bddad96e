// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/ik5/wavsynth/wavetable"
)

// Gain is the fixed headroom applied after averaging the voices.
const Gain float32 = 0.3

const customWave = -1

// snapshot is an immutable table together with the kind it was built from,
// swapped as one unit so Wave always describes the table being rendered.
type snapshot struct {
	table wavetable.Table
	wave  int32
}

// Config controls how a Synth is built.
type Config struct {
	// TableSize is the length of every generated table.
	TableSize int
	// Wave is the initial waveform.
	Wave wavetable.Kind
	// Logger receives note and waveform events at debug level.
	// Nil discards them.
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		TableSize: wavetable.DefaultSize,
		Wave:      wavetable.Sine,
	}
}

// Synth mixes a set of voices read from a shared wave table.
//
// On, Off, ChangeWave and SetTable are meant for the input goroutine and
// Render for the audio goroutine; all methods are safe to call concurrently.
// The voice set is guarded by a mutex that Render holds for a whole buffer.
// The table and its kind form an immutable snapshot swapped atomically, so
// changing the waveform never blocks rendering.
type Synth struct {
	current atomic.Pointer[snapshot]
	size    int

	mu     sync.Mutex
	voices voiceSet

	log *slog.Logger
}

// New returns a synth with a 1024 point sine table and no voices.
func New() *Synth {
	s, err := NewWithConfig(DefaultConfig())
	if err != nil {
		panic(err)
	}

	return s
}

// NewWithConfig builds a synth from cfg. A non-positive TableSize is
// rejected here rather than at render time.
func NewWithConfig(cfg Config) (*Synth, error) {
	table, err := wavetable.Generate(cfg.Wave, cfg.TableSize)
	if err != nil {
		return nil, fmt.Errorf("initial table: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Synth{
		size: cfg.TableSize,
		log:  logger,
	}
	s.current.Store(&snapshot{table: table, wave: int32(cfg.Wave)})

	return s, nil
}

// On starts a voice at freq Hz. Re-triggering an exactly equal frequency is
// a no-op, as is a frequency that is not a positive finite number.
func (s *Synth) On(freq float32) {
	if !(freq > 0) || math.IsInf(float64(freq), 0) {
		s.log.Debug("ignoring note on", "freq", freq)
		return
	}

	s.mu.Lock()
	added := s.voices.on(freq)
	count := len(s.voices)
	s.mu.Unlock()

	if added {
		s.log.Debug("note on", "freq", freq, "voices", count)
	}
}

// Off releases every voice within ReleaseTolerance of freq.
func (s *Synth) Off(freq float32) {
	s.mu.Lock()
	removed := s.voices.off(freq)
	count := len(s.voices)
	s.mu.Unlock()

	if removed > 0 {
		s.log.Debug("note off", "freq", freq, "released", removed, "voices", count)
	}
}

// AllOff releases every voice and returns how many were sounding.
func (s *Synth) AllOff() int {
	s.mu.Lock()
	n := len(s.voices)
	s.voices = s.voices[:0]
	s.mu.Unlock()

	if n > 0 {
		s.log.Debug("all notes off", "released", n)
	}

	return n
}

// ChangeWave swaps in a freshly generated table of kind. Voice phases carry
// over unchanged.
func (s *Synth) ChangeWave(kind wavetable.Kind) error {
	table, err := wavetable.Generate(kind, s.size)
	if err != nil {
		return fmt.Errorf("change wave: %w", err)
	}

	s.current.Store(&snapshot{table: table, wave: int32(kind)})
	s.log.Debug("wave changed", "wave", kind.String(), "size", s.size)

	return nil
}

// SetTable installs a custom table, such as one imported with
// wavetable.FromSource. The synth keeps its own copy.
func (s *Synth) SetTable(t wavetable.Table) error {
	if len(t) == 0 {
		return ErrEmptyTable
	}

	table := t.Clone()
	s.current.Store(&snapshot{table: table, wave: customWave})
	s.log.Debug("custom table installed", "size", len(table))

	return nil
}

// Table returns the table currently being rendered. It must not be modified.
func (s *Synth) Table() wavetable.Table {
	return s.current.Load().table
}

// Wave reports the built-in kind in use; ok is false after SetTable.
func (s *Synth) Wave() (kind wavetable.Kind, ok bool) {
	w := s.current.Load().wave
	if w == customWave {
		return 0, false
	}

	return wavetable.Kind(w), true
}

// Current returns the rendered table and its kind from a single snapshot;
// ok is false for a custom table. Unlike calling Table and Wave separately,
// the two always belong together.
func (s *Synth) Current() (table wavetable.Table, kind wavetable.Kind, ok bool) {
	cur := s.current.Load()
	if cur.wave == customWave {
		return cur.table, 0, false
	}

	return cur.table, wavetable.Kind(cur.wave), true
}

// TableSize is the length used for generated tables.
func (s *Synth) TableSize() int { return s.size }

// VoiceCount is the number of sounding voices.
func (s *Synth) VoiceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.voices)
}

// Voices returns a copy of the sounding voices.
func (s *Synth) Voices() []Voice {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Voice(nil), s.voices...)
}
