// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"fmt"
	"os"

	"github.com/ik5/wavsynth/audio"
)

// FromSource treats the whole of src as a single period and fits it into a
// table of size samples. Multi-channel audio is averaged to mono and the
// result is scaled so its peak magnitude is 1. src is not closed.
func FromSource(src audio.Source, size int) (Table, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%d: %w", size, ErrInvalidTableSize)
	}

	cycle, err := audio.ReadAll(audio.NewMonoMixer(src))
	if err != nil {
		return nil, fmt.Errorf("reading cycle: %w", err)
	}
	if len(cycle) == 0 {
		return nil, ErrEmptySource
	}

	mem, err := audio.NewBufferSource(cycle, src.SampleRate(), 1)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	fit, err := audio.NewFitResampler(mem, len(cycle), size)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	fitted, err := audio.ReadAll(fit)
	if err != nil {
		return nil, fmt.Errorf("fitting cycle: %w", err)
	}

	t := make(Table, size)
	n := copy(t, fitted)
	for i := n; i < size; i++ {
		t[i] = t[n-1]
	}

	if peak := t.Peak(); peak > 0 {
		gain := 1 / peak
		for i := range t {
			t[i] *= gain
		}
	}

	return t, nil
}

// Load decodes the file at path with the decoder registered for its
// extension and imports it with FromSource.
func Load(reg *audio.Registry, path string, size int) (Table, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	return FromSource(src, size)
}
