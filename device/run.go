// SPDX-License-Identifier: EPL-2.0

package device

import (
	"context"
	"sync"
)

// runState is the Start/Stop/Close bookkeeping shared by the callback
// backends. Every Start opens a new generation; the goroutine watching that
// run's context only stops its own generation, so a watcher left over from
// an earlier run can never halt a later one.
type runState struct {
	mu      sync.Mutex
	gen     uint64
	started bool
	closed  bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// start calls play and arranges for halt to run once ctx is done. Starting
// a running backend is a no-op unless the run's context has already ended,
// in which case that run is halted first.
func (s *runState) start(ctx context.Context, play, halt func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.started {
		if s.ctx.Err() == nil {
			return nil
		}
		if err := s.stopLocked(halt); err != nil {
			return err
		}
	}

	if err := play(); err != nil {
		return err
	}

	s.gen++
	gen := s.gen
	s.started = true
	s.ctx, s.cancel = context.WithCancel(ctx)

	go func(ctx context.Context) {
		<-ctx.Done()
		_ = s.stopGen(gen, halt)
	}(s.ctx)

	return nil
}

func (s *runState) stop(halt func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stopLocked(halt)
}

func (s *runState) stopGen(gen uint64, halt func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		return nil
	}

	return s.stopLocked(halt)
}

func (s *runState) stopLocked(halt func() error) error {
	if !s.started {
		return nil
	}
	s.started = false
	s.cancel()
	s.cancel = nil

	return halt()
}

// close stops the current run, then calls release exactly once.
func (s *runState) close(halt, release func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if err := s.stopLocked(halt); err != nil {
		return err
	}
	s.closed = true

	return release()
}

func (s *runState) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.started
}
