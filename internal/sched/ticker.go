// Package sched provides the repeating timer that drives simulations.
package sched

import (
	"sync"
	"time"
)

// TickFunc is called on every tick with the id of the run that produced it.
type TickFunc func(run uint64)

// Ticker is a cancellable repeating task. Changing the interval means Stop
// followed by Start; a running loop is never modified in place.
//
// Ticks are delivered on the ticker's own goroutine. Stop does not wait for a
// tick that is already executing, so owners compare the run id passed
// to TickFunc with the id returned by Start and drop ticks from older runs.
type Ticker struct {
	mu       sync.Mutex
	fn       TickFunc
	run      uint64
	stop     chan struct{}
	interval time.Duration
}

// NewTicker returns a stopped ticker that will call fn.
func NewTicker(fn TickFunc) *Ticker {
	return &Ticker{fn: fn}
}

// Start cancels any active loop and starts a new one firing every interval.
// It returns the new run id. A non-positive interval leaves the ticker
// stopped and still returns a fresh id, invalidating older runs.
func (t *Ticker) Start(interval time.Duration) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.run++
	if interval <= 0 {
		return t.run
	}

	t.interval = interval
	t.stop = make(chan struct{})
	go t.loop(t.run, interval, t.stop)
	return t.run
}

// Stop cancels the active loop, if any.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Ticker) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
		t.interval = 0
	}
}

// Running reports whether a loop is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Interval returns the period of the active loop, or 0 when stopped.
func (t *Ticker) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// Run returns the id of the most recent Start.
func (t *Ticker) Run() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.run
}

func (t *Ticker) loop(run uint64, interval time.Duration, stop <-chan struct{}) {
	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			// Both channels can be ready at once; prefer stopping.
			select {
			case <-stop:
				return
			default:
			}
			t.fn(run)
		}
	}
}

// IntervalForRate converts steps per second into a tick period, never
// shorter than floor.
func IntervalForRate(stepsPerSecond float64, floor time.Duration) time.Duration {
	if stepsPerSecond <= 0 {
		return 0
	}
	d := time.Duration(float64(time.Second) / stepsPerSecond)
	if d < floor {
		return floor
	}
	return d
}
