// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"errors"
	"math"
	"testing"
)

func sineSamples(freq float64, rate, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(rate)))
	}

	return out
}

func TestDominantFrequency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		freq float64
		rate int
		n    int
	}{
		{"A4 at 48k", 440, 48000, 8192},
		{"C4 at 44.1k", 261.63, 44100, 16384},
		{"high tone", 5000, 48000, 4096},
		{"non power of two length", 1000, 8000, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DominantFrequency(sineSamples(tt.freq, tt.rate, tt.n), tt.rate)
			if err != nil {
				t.Fatalf("DominantFrequency() error = %v", err)
			}

			n := 1 << int(math.Log2(float64(tt.n)))
			binWidth := float64(tt.rate) / float64(n)
			if math.Abs(got-tt.freq) > binWidth {
				t.Errorf("DominantFrequency() = %.2f, want %.2f (+/- %.2f)", got, tt.freq, binWidth)
			}
		})
	}
}

func TestDominantFrequency_Errors(t *testing.T) {
	t.Parallel()

	if _, err := DominantFrequency(make([]float32, 8), 48000); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("short input error = %v, want ErrTooFewSamples", err)
	}
	if _, err := DominantFrequency(make([]float32, 1024), 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("zero rate error = %v, want ErrInvalidSampleRate", err)
	}
}

func BenchmarkDominantFrequency(b *testing.B) {
	samples := sineSamples(440, 48000, 4096)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = DominantFrequency(samples, 48000)
	}
}
