// SPDX-License-Identifier: EPL-2.0

package midiin

import (
	"log/slog"

	"gitlab.com/gomidi/midi/v2"

	"github.com/ik5/wavsynth/wavetable"
)

// Controller numbers handled as a panic release.
const (
	ccAllSoundOff = 120
	ccAllNotesOff = 123
)

// AllChannels makes a Handler accept every MIDI channel.
const AllChannels = -1

// Instrument is what MIDI drives. *synth.Synth satisfies it.
type Instrument interface {
	On(freq float32)
	Off(freq float32)
	AllOff() int
	ChangeWave(kind wavetable.Kind) error
}

// Handler maps MIDI channel messages onto an Instrument:
//   - note on starts NoteFrequency(key); velocity is ignored
//   - note off, or note on with velocity 0, releases it
//   - control change 120 or 123 releases every voice
//   - program change 0-3 picks a waveform in wavetable.Kinds order
type Handler struct {
	inst    Instrument
	channel int
	log     *slog.Logger
}

// NewHandler listens on channel (0-15) or AllChannels. A nil logger
// discards.
func NewHandler(inst Instrument, channel int, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Handler{inst: inst, channel: channel, log: logger}
}

func (h *Handler) accepts(ch uint8) bool {
	return h.channel == AllChannels || int(ch) == h.channel
}

// Handle processes one message. It is safe to use as the callback of
// midi.ListenTo.
func (h *Handler) Handle(msg midi.Message) {
	var ch, key, vel, ctl, val, prog uint8

	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		if !h.accepts(ch) {
			return
		}
		h.log.Debug("midi note on", "note", NoteName(key), "channel", ch, "velocity", vel)
		h.inst.On(NoteFrequency(key))

	case msg.GetNoteEnd(&ch, &key):
		if !h.accepts(ch) {
			return
		}
		h.log.Debug("midi note off", "note", NoteName(key), "channel", ch)
		h.inst.Off(NoteFrequency(key))

	case msg.GetControlChange(&ch, &ctl, &val):
		if !h.accepts(ch) || (ctl != ccAllSoundOff && ctl != ccAllNotesOff) {
			return
		}
		n := h.inst.AllOff()
		h.log.Info("midi all notes off", "channel", ch, "released", n)

	case msg.GetProgramChange(&ch, &prog):
		if !h.accepts(ch) || int(prog) >= len(wavetable.Kinds) {
			return
		}
		kind := wavetable.Kinds[prog]
		if err := h.inst.ChangeWave(kind); err != nil {
			h.log.Warn("midi program change failed", "program", prog, "err", err)
			return
		}
		h.log.Debug("midi program change", "wave", kind.String())

	default:
		h.log.Debug("unhandled midi message", "msg", msg.String())
	}
}
