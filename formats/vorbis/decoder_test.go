// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type mockReader struct {
	data     []float32
	pos      int
	channels int
	err      error
}

func (m *mockReader) SampleRate() int { return 48000 }
func (m *mockReader) Channels() int   { return m.channels }

func (m *mockReader) Read(p []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += n

	return n, nil
}

func newTestSource(m *mockReader) *source {
	return &source{dec: m, sampleRate: m.SampleRate(), channels: m.Channels()}
}

func TestSource_PassesSamplesThrough(t *testing.T) {
	t.Parallel()

	data := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src := newTestSource(&mockReader{data: data, channels: 2})

	dst := make([]float32, 5) // trimmed to 4, two whole frames
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("n = %d, want 4", n)
	}
	for i := range n {
		if dst[i] != data[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], data[i])
		}
	}

	n, _ = src.ReadSamples(dst)
	if n != 2 {
		t.Errorf("second read n = %d, want 2", n)
	}
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("final read = %d, %v, want 0, EOF", n, err)
	}
}

func TestSource_TooSmallDst(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockReader{data: []float32{1, 1}, channels: 2})
	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	errBad := errors.New("bad packet")
	src := newTestSource(&mockReader{channels: 1, err: errBad})
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, errBad) {
		t.Errorf("error = %v, want %v", err, errBad)
	}
}

func TestDecoder_InvalidData(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("OggS but not really"))); err == nil {
		t.Error("Decode() error = nil, want error")
	}
}
