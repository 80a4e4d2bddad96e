// SPDX-License-Identifier: EPL-2.0

package device

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidConfig      = errors.New("invalid device config")
	ErrUnknownBackend     = errors.New("unknown audio backend")
	ErrBackendUnavailable = errors.New("audio backend not compiled in")
	ErrClosed             = errors.New("device closed")
)

// Renderer fills buf with interleaved frames. *synth.Synth satisfies it.
type Renderer interface {
	Render(buf []float32, channels, sampleRate int)
}

// Backend is a running output. Start returns once playback has begun;
// playback ends when ctx is done, Stop is called or the backend is closed.
// A stopped backend, or one whose context has ended, can be started again
// until it is closed.
type Backend interface {
	Start(ctx context.Context) error
	Stop() error
	Close() error
}

// Config is the output stream format.
type Config struct {
	SampleRate int
	Channels   int
	// BufferFrames is the number of frames rendered per callback.
	BufferFrames int
}

func DefaultConfig() Config {
	return Config{
		SampleRate:   48000,
		Channels:     2,
		BufferFrames: 512,
	}
}

func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("sample rate %d: %w", c.SampleRate, ErrInvalidConfig)
	case c.Channels <= 0:
		return fmt.Errorf("channels %d: %w", c.Channels, ErrInvalidConfig)
	case c.BufferFrames <= 0:
		return fmt.Errorf("buffer frames %d: %w", c.BufferFrames, ErrInvalidConfig)
	}

	return nil
}

// Latency is the duration of one buffer.
func (c Config) Latency() time.Duration {
	return time.Duration(c.BufferFrames) * time.Second / time.Duration(c.SampleRate)
}

// Backends lists the names accepted by Open.
var Backends = []string{"oto", "portaudio", "headless"}

// Open builds the named backend. Backends left out of the build return
// ErrBackendUnavailable.
func Open(name string, r Renderer, cfg Config) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		b   Backend
		err error
	)
	switch name {
	case "oto":
		b, err = wrap(NewOto(r, cfg))
	case "portaudio":
		b, err = wrap(NewPortAudio(r, cfg))
	case "headless":
		b, err = wrap(NewHeadless(r, cfg))
	default:
		err = fmt.Errorf("%q: %w", name, ErrUnknownBackend)
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

// wrap keeps a typed nil pointer out of the Backend interface.
func wrap[B Backend](b B, err error) (Backend, error) {
	if err != nil {
		return nil, err
	}

	return b, nil
}
