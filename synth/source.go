// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"io"

	"github.com/ik5/wavsynth/audio"
)

// Source exposes a Synth as an audio.Source so it can feed the audio
// pipeline (resampling, mono mixing, file encoding).
type Source struct {
	synth      *Synth
	sampleRate int
	channels   int
	remaining  int // frames left; negative means endless
}

// NewSource renders s at sampleRate with channels interleaved channels.
// frames limits the stream length; frames <= 0 streams forever.
func NewSource(s *Synth, sampleRate, channels, frames int) (*Source, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, audio.ErrInvalidChannels
	}
	if frames <= 0 {
		frames = -1
	}

	return &Source{
		synth:      s,
		sampleRate: sampleRate,
		channels:   channels,
		remaining:  frames,
	}, nil
}

func (src *Source) SampleRate() int { return src.sampleRate }
func (src *Source) Channels() int   { return src.channels }
func (src *Source) BufSize() int    { return 4096 }
func (src *Source) Close() error    { return nil }

// Remaining is the number of frames left, or -1 for an endless stream.
func (src *Source) Remaining() int { return src.remaining }

func (src *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%src.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if src.remaining == 0 {
		return 0, io.EOF
	}

	frames := len(dst) / src.channels
	if src.remaining > 0 {
		frames = min(frames, src.remaining)
	}

	n := frames * src.channels
	src.synth.Render(dst[:n], src.channels, src.sampleRate)

	if src.remaining > 0 {
		src.remaining -= frames
		if src.remaining == 0 {
			return n, io.EOF
		}
	}

	return n, nil
}
