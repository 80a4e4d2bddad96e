// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavsynth/audio"
	"github.com/ik5/wavsynth/utils"
)

// Encode drains src into w as an integer PCM WAV of bitDepth bits (16, 24
// or 32) and returns the number of frames written. The header is patched
// on completion, which is why w has to seek.
func Encode(w io.WriteSeeker, src audio.Source, bitDepth int) (int, error) {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return 0, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	channels := src.Channels()
	if channels <= 0 {
		return 0, ErrInvalidChannels
	}

	enc := gowav.NewEncoder(w, src.SampleRate(), bitDepth, channels, formatPCM)

	size := max(src.BufSize(), channels)
	size -= size % channels
	buf := make([]float32, size)
	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  src.SampleRate(),
		},
		Data:           make([]int, size),
		SourceBitDepth: bitDepth,
	}

	written := 0
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			intBuf.Data = intBuf.Data[:n]
			for i, v := range buf[:n] {
				intBuf.Data[i] = utils.Float32ToPCM(v, bitDepth)
			}
			if werr := enc.Write(intBuf); werr != nil {
				return written, fmt.Errorf("wav encode: %w", werr)
			}
			written += n / channels
		}

		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return written, fmt.Errorf("wav encode: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return written, fmt.Errorf("wav encode: %w", err)
	}

	return written, nil
}
