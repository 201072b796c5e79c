package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces pulse bursts so a stalled consumer cannot make the
// emulated inputs fire faster than the configured minimum gap.
type throttle struct {
	gap time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(gap time.Duration) *throttle {
	return &throttle{gap: max(gap, 0)}
}

// wait blocks until gap has passed since the previous burst or ctx is done.
func (t *throttle) wait(ctx context.Context) error {
	if t == nil || t.gap == 0 {
		return ctx.Err()
	}
	t.mu.Lock()
	due := t.last.Add(t.gap)
	now := time.Now()
	if !due.After(now) {
		t.last = now
		t.mu.Unlock()
		return nil
	}
	t.last = due
	t.mu.Unlock()

	timer := time.NewTimer(due.Sub(now))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
