// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders (wav, aiff) to
// audio.Source.
package pcm

import (
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavsynth/utils"
)

// Reader is the part of a go-audio decoder the Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM from a Reader and scales it to float32.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	// offset is added to every raw sample before scaling; 8-bit WAV data
	// is unsigned and needs -128.
	offset int
	intBuf *goaudio.IntBuffer
}

// NewSource wraps dec. format must come from dec.Format().
func NewSource(dec Reader, format *goaudio.Format, bitDepth, offset int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
		offset:     offset,
		intBuf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 4096),
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int    { return cap(s.intBuf.Data) }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < len(dst) {
		s.intBuf.Data = make([]int, len(dst))
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.PCMToFloat32(v+s.offset, s.bitDepth)
	}

	// go-audio signals the end with a short read
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}
