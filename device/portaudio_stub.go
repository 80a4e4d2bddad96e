// SPDX-License-Identifier: EPL-2.0

//go:build !portaudio

package device

import "context"

// PortAudio needs the portaudio build tag and the C library.
type PortAudio struct{}

func NewPortAudio(Renderer, Config) (*PortAudio, error) {
	return nil, ErrBackendUnavailable
}

func (*PortAudio) Start(context.Context) error { return ErrBackendUnavailable }
func (*PortAudio) Stop() error                 { return nil }
func (*PortAudio) Close() error                { return nil }
