// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package device

import (
	"context"
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// Oto plays through github.com/ebitengine/oto/v3. oto allows a single
// context per process, so only one Oto may exist at a time.
type Oto struct {
	ctx    *oto.Context
	player *oto.Player
	cfg    Config

	run runState
}

func NewOto(r Renderer, cfg Config) (*Oto, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   cfg.Latency(),
	})
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	<-ready

	return &Oto{
		ctx:    ctx,
		player: ctx.NewPlayer(NewReader(r, cfg)),
		cfg:    cfg,
	}, nil
}

func (o *Oto) Start(ctx context.Context) error {
	return o.run.start(ctx, o.play, o.pause)
}

func (o *Oto) Stop() error {
	return o.run.stop(o.pause)
}

func (o *Oto) Close() error {
	return o.run.close(o.pause, func() error {
		if err := o.player.Close(); err != nil {
			return fmt.Errorf("oto player: %w", err)
		}

		return nil
	})
}

func (o *Oto) play() error {
	o.player.Play()

	return nil
}

func (o *Oto) pause() error {
	o.player.Pause()

	return o.player.Err()
}
