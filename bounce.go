// SPDX-License-Identifier: EPL-2.0

package wavsynth

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/ik5/wavsynth/audio"
	"github.com/ik5/wavsynth/synth"
	"github.com/ik5/wavsynth/utils"
)

var (
	ErrInvalidDuration   = errors.New("bounce duration must be positive")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)

// ToMono16 resamples src to targetRate, mixes it down to mono and collects
// the result as 16-bit PCM. The resampler is skipped when src already runs
// at targetRate.
//
// bufferSize is the number of samples read per call; values <= 0 use 4096.
// The returned rate is always targetRate.
func ToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, targetRate, ErrInvalidSampleRate
	}
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	pipeline := src
	if src.SampleRate() != targetRate {
		pipeline = audio.NewResampler(src, targetRate)
	}
	mono := audio.NewMonoMixer(pipeline)

	pcm16 := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			start := len(pcm16)
			pcm16 = slices.Grow(pcm16, n)[:start+n]
			utils.Floats16(pcm16[start:], buf[:n])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("to mono16: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return pcm16, targetRate, nil
}

// BounceConfig describes an offline render.
type BounceConfig struct {
	// SampleRate of the returned PCM.
	SampleRate int
	// Channels the synth renders before the mono mixdown. The output is
	// identical for any value since every channel carries the same signal;
	// it only matters for exercising the stereo path. Zero means 1.
	Channels int
	// Duration of audio to render.
	Duration time.Duration
	// BufferSize is the read size of the pipeline; zero means 4096.
	BufferSize int
}

// Frames is the number of frames Duration covers at SampleRate, rounded
// down.
func (c BounceConfig) Frames() int {
	return int(int64(c.Duration) * int64(c.SampleRate) / int64(time.Second))
}

// Bounce renders cfg.Duration of the synth's current voices to mono 16-bit
// PCM. Voice phases advance just as they would during live playback.
func Bounce(s *synth.Synth, cfg BounceConfig) ([]int16, error) {
	if cfg.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if cfg.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	channels := max(cfg.Channels, 1)

	frames := cfg.Frames()
	if frames == 0 {
		return []int16{}, nil
	}

	src, err := synth.NewSource(s, cfg.SampleRate, channels, frames)
	if err != nil {
		return nil, fmt.Errorf("bounce: %w", err)
	}

	pcm, _, err := ToMono16(src, cfg.SampleRate, cfg.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("bounce: %w", err)
	}

	return pcm, nil
}
