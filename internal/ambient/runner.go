package ambient

import (
	"sync"

	"github.com/san-kum/lifesim/internal/sched"
)

// Runner drives a Field from a sched.Ticker. It only ticks while the host
// view is visible; becoming visible again restarts the timer rather than
// catching up on missed generations.
type Runner struct {
	mu      sync.Mutex
	field   *Field
	ticker  *sched.Ticker
	run     uint64
	visible bool
	reduced bool
	onTick  func(TickReport)
}

// NewRunner wraps field. onTick, if non-nil, is called after every tick with
// the runner's lock held, so it must not call back into the Runner.
func NewRunner(field *Field, onTick func(TickReport)) *Runner {
	r := &Runner{field: field, onTick: onTick, visible: true, reduced: field.cfg.ReducedMotion}
	r.ticker = sched.NewTicker(r.tick)
	return r
}

// Start arms the timer if the view is visible.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restartLocked()
}

// Stop cancels the timer.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticker.Stop()
	r.run = 0
}

// SetVisible pauses or resumes the field.
func (r *Runner) SetVisible(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = visible
	r.restartLocked()
}

// SetReducedMotion switches between the normal and the slow cadence.
func (r *Runner) SetReducedMotion(reduced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reduced = reduced
	r.restartLocked()
}

// Resize rebuilds the field for a new viewport. Any pending tick of the old
// board is discarded.
func (r *Runner) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticker.Stop()
	r.field.Resize(width, height)
	r.restartLocked()
}

// Active reports whether the timer is armed.
func (r *Runner) Active() bool {
	return r.ticker.Running()
}

// View runs fn with the field while holding the runner's lock.
func (r *Runner) View(fn func(*Field)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.field)
}

func (r *Runner) restartLocked() {
	r.ticker.Stop()
	r.run = 0
	if !r.visible {
		return
	}
	r.run = r.ticker.Start(r.field.Interval(r.reduced))
}

func (r *Runner) tick(run uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if run != r.run {
		return
	}
	rep := r.field.Tick()
	if r.onTick != nil {
		r.onTick(rep)
	}
}
