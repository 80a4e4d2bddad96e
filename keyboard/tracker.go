// SPDX-License-Identifier: EPL-2.0

package keyboard

import "sync"

// Tracker remembers which keys are held so auto-repeat presses can be
// dropped.
type Tracker struct {
	mu   sync.Mutex
	down map[Key]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{down: make(map[Key]struct{})}
}

// Press reports whether k just went down; repeats while held return false.
func (t *Tracker) Press(k Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, held := t.down[k]; held {
		return false
	}
	t.down[k] = struct{}{}

	return true
}

// Release reports whether k was held.
func (t *Tracker) Release(k Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, held := t.down[k]; !held {
		return false
	}
	delete(t.down, k)

	return true
}

// Held returns the number of keys currently down.
func (t *Tracker) Held() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.down)
}
