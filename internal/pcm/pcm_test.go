// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type mockReader struct {
	data []int
	pos  int
	err  error
}

func (m *mockReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 8000}
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.data[m.pos:])
	m.pos += n

	return n, nil
}

func TestSource_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		offset   int
		raw      []int
		want     []float32
	}{
		{"16 bit", 16, 0, []int{0, 16384, -16384, -32768}, []float32{0, 0.5, -0.5, -1}},
		{"unsigned 8 bit", 8, -128, []int{128, 192, 64, 0}, []float32{0, 0.5, -0.5, -1}},
		{"signed 8 bit", 8, 0, []int{0, 64, -64, -128}, []float32{0, 0.5, -0.5, -1}},
		{"24 bit", 24, 0, []int{0, 4194304, -8388608}, []float32{0, 0.5, -1}},
		{"32 bit", 32, 0, []int{0, 1073741824, -2147483648}, []float32{0, 0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := &mockReader{data: tt.raw}
			src := NewSource(dec, dec.Format(), tt.bitDepth, tt.offset)

			dst := make([]float32, 16)
			n, err := src.ReadSamples(dst)
			if err != io.EOF {
				t.Errorf("short read error = %v, want io.EOF", err)
			}
			if n != len(tt.want) {
				t.Fatalf("n = %d, want %d", n, len(tt.want))
			}
			for i, w := range tt.want {
				if dst[i] != w {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
				}
			}
		})
	}
}

func TestSource_Streams(t *testing.T) {
	t.Parallel()

	dec := &mockReader{data: make([]int, 10)}
	src := NewSource(dec, dec.Format(), 16, 0)

	dst := make([]float32, 4)
	total := 0
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	if total != 10 {
		t.Errorf("total = %d, want 10", total)
	}
	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Errorf("format = %d Hz %d ch, want 8000 Hz 1 ch", src.SampleRate(), src.Channels())
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	errBad := errors.New("bad chunk")
	dec := &mockReader{err: errBad}
	src := NewSource(dec, dec.Format(), 16, 0)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, errBad) {
		t.Errorf("error = %v, want %v", err, errBad)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	dec := &mockReader{data: []int{1}}
	src := NewSource(dec, dec.Format(), 16, 0)

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}
