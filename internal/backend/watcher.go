package backend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/devmenu/internal/logging/events"
	"github.com/atomicstack/devmenu/internal/state"
)

// Kind represents the source of a watcher event.
type Kind int

const (
	KindPulses Kind = iota
	KindClock
)

func (k Kind) String() string {
	switch k {
	case KindPulses:
		return "pulses"
	case KindClock:
		return "clock"
	default:
		return "unknown"
	}
}

// Event reports a change the device inputs made to its cells. Items lists
// the menu item ids whose text may have changed.
type Event struct {
	Kind  Kind
	Items []string
	Data  interface{}
	Err   error
}

// Watcher emulates the device's interrupt sources: pulse inputs counting up
// and the real-time clock advancing. It mutates the device cells directly
// and publishes one event per change.
type Watcher struct {
	device   *state.Device
	interval time.Duration
	rates    [state.Channels]uint32

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts the input sources of device. Every interval, channel i
// receives rates[i] pulses; missing rates count zero.
func NewWatcher(device *state.Device, interval time.Duration, rates ...uint32) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		device:   device,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	copy(w.rates[:], rates)

	w.startPulsePoller()
	w.startClockPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of watcher events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Sources exit after their current tick; use Wait
// if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all sources have exited and the events channel is
// closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startPulsePoller() {
	throttle := newThrottle(w.interval / 2)
	ids := make([]string, 0, state.Channels)
	for i := 0; i < state.Channels; i++ {
		ids = append(ids, fmt.Sprintf("counters:ch%d", i))
	}
	w.wg.Add(1)
	go w.poll(KindPulses, false, func(ctx context.Context) ([]string, interface{}, error) {
		if err := throttle.wait(ctx); err != nil {
			return nil, nil, err
		}
		counts := make([]uint32, state.Channels)
		var changed []string
		for ch, rate := range w.rates {
			counts[ch] = w.device.Pulse(ch, rate)
			if rate > 0 {
				changed = append(changed, ids[ch])
			}
		}
		events.Backend.Tick(KindPulses.String(), counts)
		return changed, counts, nil
	})
}

func (w *Watcher) startClockPoller() {
	last := time.Now()
	w.wg.Add(1)
	go w.poll(KindClock, true, func(context.Context) ([]string, interface{}, error) {
		now := time.Now()
		elapsed := now.Sub(last)
		last = now
		t := w.device.Advance(elapsed)
		events.Backend.Tick(KindClock.String(), t.Format(time.RFC3339))
		return []string{"clock:time", "clock:date"}, t, nil
	})
}

// poll runs fetch on every tick and publishes the result. With skipFirst
// the source waits for the first tick instead of firing immediately.
func (w *Watcher) poll(kind Kind, skipFirst bool, fetch func(context.Context) ([]string, interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		items, data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Items: items, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !skipFirst && !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
