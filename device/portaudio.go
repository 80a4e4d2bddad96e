// SPDX-License-Identifier: EPL-2.0

//go:build portaudio

package device

import (
	"context"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// PortAudio plays through a portaudio default output stream whose callback
// calls Render directly.
type PortAudio struct {
	stream *portaudio.Stream
	cfg    Config
	r      Renderer

	run runState
}

func NewPortAudio(r Renderer, cfg Config) (*PortAudio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	p := &PortAudio{cfg: cfg, r: r}
	stream, err := portaudio.OpenDefaultStream(0, cfg.Channels, float64(cfg.SampleRate), cfg.BufferFrames, p.process)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("portaudio stream: %w", err)
	}
	p.stream = stream

	return p, nil
}

// process receives interleaved output when the stream is opened with a
// single []float32 argument.
func (p *PortAudio) process(out []float32) {
	p.r.Render(out, p.cfg.Channels, p.cfg.SampleRate)
}

func (p *PortAudio) Start(ctx context.Context) error {
	return p.run.start(ctx, p.startStream, p.stopStream)
}

func (p *PortAudio) Stop() error {
	return p.run.stop(p.stopStream)
}

func (p *PortAudio) Close() error {
	return p.run.close(p.stopStream, func() error {
		err := p.stream.Close()
		if terr := portaudio.Terminate(); err == nil {
			err = terr
		}
		if err != nil {
			return fmt.Errorf("portaudio close: %w", err)
		}

		return nil
	})
}

func (p *PortAudio) startStream() error {
	if err := p.stream.Start(); err != nil {
		return fmt.Errorf("portaudio start: %w", err)
	}

	return nil
}

func (p *PortAudio) stopStream() error {
	if err := p.stream.Stop(); err != nil {
		return fmt.Errorf("portaudio stop: %w", err)
	}

	return nil
}
