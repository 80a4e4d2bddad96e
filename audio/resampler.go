// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wavsynth/utils"
)

// Resampler streams from src at a different rate using cubic interpolation.
// Works on interleaved samples and preserves the channel count. When the
// output is sparser than the input a one-pole low-pass smooths the source.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window around the read head: t-1, t0, t+1, t+2
	win  [4][]float32
	real [4]bool

	pos    float64 // fractional position between win[1] and win[2]
	primed bool
	eof    bool
	done   bool

	frame []float32

	smooth bool
	warm   bool
	alpha  float32
	state  []float32
}

// NewResampler converts src to dstRate.
func NewResampler(src Source, dstRate int) *Resampler {
	return newResampler(src, float64(src.SampleRate())/float64(dstRate), dstRate)
}

// NewFitResampler stretches srcFrames frames of src onto exactly dstFrames
// output frames, regardless of the declared sample rates. The reported
// SampleRate is scaled by the same factor.
func NewFitResampler(src Source, srcFrames, dstFrames int) (*Resampler, error) {
	if srcFrames <= 0 || dstFrames <= 0 {
		return nil, ErrInvalidLength
	}

	step := float64(srcFrames) / float64(dstFrames)
	rate := int(float64(src.SampleRate()) / step)

	return newResampler(src, step, rate), nil
}

func newResampler(src Source, step float64, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]float32, channels),
		smooth:   step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame fills dst with the next whole source frame. It reports false once
// the source is exhausted; a short trailing frame is zero padded.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	got := 0
	for got < r.channels {
		n, err := r.src.ReadSamples(r.frame[got:])
		got += n
		if err == io.EOF || (n == 0 && err == nil) {
			r.eof = true
			break
		}
		if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	if got == 0 {
		return false, nil
	}
	clear(r.frame[got:])

	if r.smooth {
		if !r.warm {
			// start the filter on the first frame to avoid a ramp from zero
			copy(r.state, r.frame)
			r.warm = true
		}
		for c := range r.channels {
			r.state[c] = r.alpha*r.frame[c] + (1-r.alpha)*r.state[c]
		}
		copy(dst, r.state)
	} else {
		copy(dst, r.frame)
	}

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.readFrame(r.win[1])
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return nil
	}

	// No history before the first frame: repeat it.
	copy(r.win[0], r.win[1])
	r.real[0], r.real[1] = true, true

	for i := 2; i < 4; i++ {
		ok, err := r.readFrame(r.win[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.win[i], r.win[i-1])
		}
		r.real[i] = ok
	}

	return nil
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]

	ok, err := r.readFrame(r.win[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.win[3], r.win[2])
	}
	r.real[3] = ok

	if !r.real[1] {
		r.done = true
	}

	return nil
}

// ReadSamples produces resampled interleaved samples into dst.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames && !r.done {
		for r.pos >= 1.0 && !r.done {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if r.done {
			break
		}

		x := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.pos += r.step
	}

	if r.done {
		return written * r.channels, io.EOF
	}

	return written * r.channels, nil
}
