// SPDX-License-Identifier: EPL-2.0

//go:build !portaudio

package device

import (
	"errors"
	"testing"
)

func TestOpen_PortAudioNotBuilt(t *testing.T) {
	t.Parallel()

	b, err := Open("portaudio", &rampRenderer{}, DefaultConfig())
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("Open(portaudio) error = %v, want ErrBackendUnavailable", err)
	}
	if b != nil {
		t.Errorf("Open(portaudio) backend = %v, want nil", b)
	}
}
