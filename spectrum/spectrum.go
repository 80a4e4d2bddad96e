// SPDX-License-Identifier: EPL-2.0

// Package spectrum estimates the pitch of rendered audio.
package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/ktye/fft"
)

const minSamples = 16

var (
	ErrTooFewSamples     = errors.New("too few samples for analysis")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// component of mono samples. It analyses the longest power-of-two prefix
// through a Hann window and refines the peak bin by parabolic interpolation.
func DominantFrequency(samples []float32, sampleRate int) (float64, error) {
	if sampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}
	if len(samples) < minSamples {
		return 0, fmt.Errorf("%d: %w", len(samples), ErrTooFewSamples)
	}

	n := 1 << (bits.Len(uint(len(samples))) - 1)
	mags, err := magnitudes(samples[:n])
	if err != nil {
		return 0, err
	}

	peak := 1
	for k := 2; k < len(mags); k++ {
		if mags[k] > mags[peak] {
			peak = k
		}
	}

	bin := float64(peak)
	if peak+1 < len(mags) {
		a, b, c := mags[peak-1], mags[peak], mags[peak+1]
		if d := a - 2*b + c; d != 0 {
			bin += 0.5 * (a - c) / d
		}
	}

	return bin * float64(sampleRate) / float64(n), nil
}

// magnitudes returns |X[k]| for k in [0, n/2] of the Hann-windowed input.
// len(samples) must be a power of two.
func magnitudes(samples []float32) ([]float64, error) {
	n := len(samples)

	f, err := fft.New(n)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	x := make([]complex128, n)
	for i, s := range samples {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
		x[i] = complex(float64(s)*w, 0)
	}
	x = f.Transform(x)

	mags := make([]float64, n/2+1)
	for k := range mags {
		mags[k] = cmplx.Abs(x[k])
	}

	return mags, nil
}
