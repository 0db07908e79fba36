package sched

import (
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestTickerFires(t *testing.T) {
	var count atomic.Int64
	tk := NewTicker(func(uint64) { count.Add(1) })

	tk.Start(2 * time.Millisecond)
	defer tk.Stop()

	waitFor(t, func() bool { return count.Load() >= 3 })
	if !tk.Running() {
		t.Error("ticker should report running")
	}
	if tk.Interval() != 2*time.Millisecond {
		t.Errorf("Interval() = %v", tk.Interval())
	}
}

func TestTickerStop(t *testing.T) {
	var count atomic.Int64
	tk := NewTicker(func(uint64) { count.Add(1) })

	tk.Start(time.Millisecond)
	waitFor(t, func() bool { return count.Load() >= 1 })
	tk.Stop()

	// Allow a tick that was already in flight to land.
	time.Sleep(5 * time.Millisecond)
	after := count.Load()
	time.Sleep(20 * time.Millisecond)

	if got := count.Load(); got != after {
		t.Errorf("ticks after Stop: %d -> %d", after, got)
	}
	if tk.Running() || tk.Interval() != 0 {
		t.Error("ticker should report stopped")
	}
}

func TestTickerRestartInvalidatesOldRun(t *testing.T) {
	var lastRun atomic.Uint64
	tk := NewTicker(func(run uint64) { lastRun.Store(run) })

	first := tk.Start(time.Millisecond)
	second := tk.Start(time.Millisecond)
	defer tk.Stop()

	if second <= first {
		t.Fatalf("run ids not increasing: %d then %d", first, second)
	}
	if tk.Run() != second {
		t.Errorf("Run() = %d, want %d", tk.Run(), second)
	}
	waitFor(t, func() bool { return lastRun.Load() == second })
}

func TestTickerNonPositiveInterval(t *testing.T) {
	tk := NewTicker(func(uint64) { t.Error("should not tick") })
	before := tk.Run()
	run := tk.Start(0)
	if run == before {
		t.Error("Start(0) should still bump the run id")
	}
	if tk.Running() {
		t.Error("Start(0) should leave the ticker stopped")
	}
	time.Sleep(5 * time.Millisecond)
}

func TestIntervalForRate(t *testing.T) {
	tests := []struct {
		rate  float64
		floor time.Duration
		want  time.Duration
	}{
		{4, 40 * time.Millisecond, 250 * time.Millisecond},
		{14, 40 * time.Millisecond, 71428571 * time.Nanosecond},
		{100, 40 * time.Millisecond, 40 * time.Millisecond},
		{0, 40 * time.Millisecond, 0},
		{-1, 0, 0},
	}

	for _, tt := range tests {
		if got := IntervalForRate(tt.rate, tt.floor); got != tt.want {
			t.Errorf("IntervalForRate(%v, %v) = %v, want %v", tt.rate, tt.floor, got, tt.want)
		}
	}
}
