// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource replays interleaved samples held in memory.
type BufferSource struct {
	samples    []float32
	sampleRate int
	channels   int
	off        int
}

// NewBufferSource wraps samples (interleaved, len a multiple of channels).
func NewBufferSource(samples []float32, sampleRate, channels int) (*BufferSource, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrInvalidDstSize
	}

	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return len(b.samples) }
func (b *BufferSource) Close() error    { return nil }

// Frames is the total number of frames held by the source.
func (b *BufferSource) Frames() int { return len(b.samples) / b.channels }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.off >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst[:len(dst)-len(dst)%b.channels], b.samples[b.off:])
	b.off += n
	if b.off >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}

// ReadAll drains src into memory and returns the interleaved samples.
func ReadAll(src Source) ([]float32, error) {
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	size -= size % max(src.Channels(), 1)
	if size == 0 {
		size = src.Channels()
	}

	buf := make([]float32, size)
	var out []float32
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if n == 0 {
			return out, nil
		}
	}
}
