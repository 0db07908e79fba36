package sim

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/sched"
)

// MinInterval bounds how fast a session can be driven.
const MinInterval = 40 * time.Millisecond

// Session is one interactive simulation: a 2D or 3D board, its rule and
// level, and the timer that advances it. All methods are safe for
// concurrent use.
type Session struct {
	mu sync.Mutex

	mode     string
	level    config.Level
	ruleSpec string
	rule     life.Rule
	speed    float64
	density  float64

	grid   *life.Grid
	grid3d *life.Grid3D
	rng    *rand.Rand

	ticker    *sched.Ticker
	run       uint64
	running   bool
	observers []Observer
}

// NewSession builds a paused session from resolved settings. A non-empty
// pattern is applied to the fresh board.
func NewSession(st config.Settings) *Session {
	s := &Session{
		mode:     st.Mode,
		ruleSpec: st.RuleSpec,
		rule:     st.Rule,
		rng:      life.NewRNG(st.Seed),
	}
	s.ticker = sched.NewTicker(s.tick)
	s.applyLevelLocked(st.Level)
	s.speed = st.StepsPerSecond
	s.density = st.Density
	if st.Pattern != "" {
		s.applyPatternLocked(st.Pattern)
	}
	return s
}

func (s *Session) AddObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// SetMode switches between 2D and 3D, keeping the level name and falling
// back to the mode's default rule. The session is paused and the board reset.
func (s *Session) SetMode(mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lv, ok := config.GetLevel(mode, s.level.Name)
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrUnknownMode, mode)
	}
	s.stopLocked()
	s.mode = mode
	s.setRuleLocked("")
	s.applyLevelLocked(lv)
	return nil
}

// SetLevel loads a level preset. The session is paused, the speed set to
// the level's and the board rebuilt empty at the new size.
func (s *Session) SetLevel(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lv, ok := config.GetLevel(s.mode, name)
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrUnknownLevel, name)
	}
	s.stopLocked()
	s.applyLevelLocked(lv)
	return nil
}

// SetRule accepts a preset name or a literal rule string. An empty value
// selects the mode's default.
func (s *Session) SetRule(nameOrSpec string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setRuleLocked(nameOrSpec)
}

func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.startLocked()
}

func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Toggle flips between running and paused and reports the new state.
func (s *Session) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.stopLocked()
	} else {
		s.startLocked()
	}
	return s.running
}

// Step advances one generation. It is refused while the timer runs.
func (s *Session) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrRunning
	}
	s.stepLocked()
	return nil
}

// SetSpeed changes the rate in steps per second, restarting the timer at the
// new interval if it is running.
func (s *Session) SetSpeed(stepsPerSecond float64) error {
	if stepsPerSecond <= 0 {
		return fmt.Errorf("%w: %v", config.ErrInvalidSpeed, stepsPerSecond)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speed = stepsPerSecond
	if s.running {
		s.startLocked()
	}
	return nil
}

// Randomize refills the board at the level's density. A running session
// keeps running on a fresh timer.
func (s *Session) Randomize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	running := s.running
	s.stopLocked()
	if s.mode == config.Mode3D {
		s.grid3d.Randomize(s.density, s.rng)
	} else {
		s.grid.Randomize(s.density, s.rng)
	}
	if running {
		s.startLocked()
	}
}

// Clear pauses and empties the board.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.resetLocked()
}

// ApplyPattern pauses and loads a named 2D pattern or 3D seed. Unknown names
// leave the board untouched and report false.
func (s *Session) ApplyPattern(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	return s.applyPatternLocked(name)
}

// Paint sets a 2D cell. It does nothing in 3D or out of range.
func (s *Session) Paint(r, c int, alive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == config.Mode2D {
		s.grid.Set(r, c, alive)
	}
}

// ToggleCell flips a 2D cell. It does nothing in 3D or out of range.
func (s *Session) ToggleCell(r, c int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == config.Mode2D {
		s.grid.Toggle(r, c)
	}
}

func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Session) Mode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Interval is the current tick period.
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sched.IntervalForRate(s.speed, MinInterval)
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Mode:           s.mode,
		Level:          s.level.Name,
		Rule:           s.ruleSpec,
		Running:        s.running,
		Wrap:           s.level.Wrap,
		StepsPerSecond: s.speed,
	}
	if s.mode == config.Mode3D {
		snap.Generation = s.grid3d.Generation()
		snap.Live = s.grid3d.Live()
		snap.Size = s.grid3d.Size()
		snap.Cells = append([]uint8(nil), s.grid3d.Cells()...)
	} else {
		snap.Generation = s.grid.Generation()
		snap.Live = s.grid.Live()
		snap.Rows, snap.Cols = s.grid.Rows(), s.grid.Cols()
		snap.Cells = append([]uint8(nil), s.grid.Cells()...)
	}
	return snap
}

// Close stops the timer.
func (s *Session) Close() { s.Pause() }

func (s *Session) startLocked() {
	s.running = true
	s.run = s.ticker.Start(sched.IntervalForRate(s.speed, MinInterval))
}

func (s *Session) stopLocked() {
	s.ticker.Stop()
	s.running = false
	s.run = 0
}

func (s *Session) tick(run uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run != s.run || !s.running {
		return
	}
	s.stepLocked()
}

func (s *Session) stepLocked() {
	var gen, live int
	if s.mode == config.Mode3D {
		s.grid3d.Step(s.rule, s.level.Wrap)
		gen, live = s.grid3d.Generation(), s.grid3d.Live()
	} else {
		s.grid.Step(s.rule, s.level.Wrap)
		gen, live = s.grid.Generation(), s.grid.Live()
	}
	for _, o := range s.observers {
		o.OnStep(gen, live)
	}
}

func (s *Session) setRuleLocked(nameOrSpec string) {
	s.ruleSpec = config.ResolveRule(s.mode, nameOrSpec)
	s.rule = life.ParseRule(s.ruleSpec)
}

func (s *Session) applyLevelLocked(lv config.Level) {
	s.level = lv
	s.speed = lv.StepsPerSecond
	s.density = lv.RandomFill
	if s.mode == config.Mode3D {
		s.grid, s.grid3d = nil, life.NewGrid3D(lv.Size)
	} else {
		s.grid, s.grid3d = life.NewGrid(lv.Rows, lv.Cols), nil
	}
}

func (s *Session) resetLocked() {
	if s.mode == config.Mode3D {
		s.grid3d.Reset()
	} else {
		s.grid.Reset()
	}
}

func (s *Session) applyPatternLocked(name string) bool {
	if s.mode == config.Mode3D {
		return patterns.Apply3D(s.grid3d, name, s.density, s.rng)
	}
	return patterns.Apply2D(s.grid, name)
}
