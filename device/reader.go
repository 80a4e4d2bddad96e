// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"math"
)

const bytesPerSample = 4

// Reader turns a Renderer into an io.Reader of float32 little-endian
// interleaved frames, the layout oto's FormatFloat32LE expects.
//
// Rendering always happens in whole frames. When p is not a multiple of the
// frame size the remaining bytes of the last frame are kept for the next
// Read. Buffers are reused so steady-state reads do not allocate.
type Reader struct {
	r   Renderer
	cfg Config

	samples []float32
	bytes   []byte
	pending []byte
}

func NewReader(r Renderer, cfg Config) *Reader {
	return &Reader{r: r, cfg: cfg}
}

// Read never returns an error; the stream is endless.
func (rd *Reader) Read(p []byte) (int, error) {
	n := copy(p, rd.pending)
	rd.pending = rd.pending[n:]
	if n == len(p) {
		return n, nil
	}

	frameBytes := rd.cfg.Channels * bytesPerSample
	frames := max((len(p)-n+frameBytes-1)/frameBytes, 1)
	rendered := rd.render(frames)

	m := copy(p[n:], rendered)
	rd.pending = rendered[m:]

	return n + m, nil
}

func (rd *Reader) render(frames int) []byte {
	count := frames * rd.cfg.Channels
	if cap(rd.samples) < count {
		rd.samples = make([]float32, count)
		rd.bytes = make([]byte, count*bytesPerSample)
	}
	samples := rd.samples[:count]
	out := rd.bytes[:count*bytesPerSample]

	rd.r.Render(samples, rd.cfg.Channels, rd.cfg.SampleRate)
	for i, v := range samples {
		binary.LittleEndian.PutUint32(out[i*bytesPerSample:], math.Float32bits(v))
	}

	return out
}
