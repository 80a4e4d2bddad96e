// SPDX-License-Identifier: EPL-2.0

package device

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Headless renders on a wall-clock ticker without any sound card, one
// buffer per Config.Latency. It keeps the synth's voices moving exactly as a
// real device would, which is what tests and -headless runs need.
type Headless struct {
	r   Renderer
	cfg Config

	// OnBuffer, when set before Start, receives every rendered buffer.
	// The slice is reused after the call returns.
	OnBuffer func(buf []float32)

	frames atomic.Int64

	mu     sync.Mutex
	runCtx context.Context
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

func NewHeadless(r Renderer, cfg Config) (*Headless, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Headless{r: r, cfg: cfg}, nil
}

// Frames is the number of frames rendered so far.
func (h *Headless) Frames() int64 { return h.frames.Load() }

func (h *Headless) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	if h.done != nil {
		if h.runCtx.Err() == nil {
			return nil
		}
		// the previous run ended with its context; reap it
		h.cancel()
		<-h.done
		h.runCtx, h.cancel, h.done = nil, nil, nil
	}

	h.runCtx, h.cancel = context.WithCancel(ctx)
	h.done = make(chan struct{})
	go h.run(h.runCtx, h.done)

	return nil
}

func (h *Headless) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	buf := make([]float32, h.cfg.BufferFrames*h.cfg.Channels)
	ticker := time.NewTicker(h.cfg.Latency())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.r.Render(buf, h.cfg.Channels, h.cfg.SampleRate)
			h.frames.Add(int64(h.cfg.BufferFrames))
			if h.OnBuffer != nil {
				h.OnBuffer(buf)
			}
		}
	}
}

// Stop halts rendering and waits for the loop to exit.
func (h *Headless) Stop() error {
	h.mu.Lock()
	cancel, done := h.cancel, h.done
	h.runCtx, h.cancel, h.done = nil, nil, nil
	h.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done

	return nil
}

func (h *Headless) Close() error {
	if err := h.Stop(); err != nil {
		return err
	}

	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	return nil
}
