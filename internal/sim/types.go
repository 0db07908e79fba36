package sim

import (
	"errors"
	"fmt"
)

// Metric accumulates a scalar over the generations of one run.
type Metric interface {
	Name() string
	Observe(generation, live int)
	Value() float64
	Reset()
}

// Observer is notified after every generation. It is called with the
// session lock held and must not call back into the Session.
type Observer interface {
	OnStep(generation, live int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(generation, live int)

func (f ObserverFunc) OnStep(generation, live int) { f(generation, live) }

// Snapshot is a copy of the session state safe to use after the lock is
// released. For 2D, Cells is row-major rows*cols; for 3D it is size^3
// indexed x + y*size + z*size*size.
type Snapshot struct {
	Mode           string
	Level          string
	Rule           string
	Running        bool
	Wrap           bool
	StepsPerSecond float64
	Generation     int
	Live           int
	Rows, Cols     int
	Size           int
	Cells          []uint8
}

var (
	ErrRunning     = errors.New("sim: session is running")
	ErrNoRuns      = errors.New("sim: ensemble needs at least one run")
	ErrGenerations = errors.New("sim: generations must be positive")
)

// RunError annotates a failure with the ensemble run and generation it
// happened at.
type RunError struct {
	Run        int
	Generation int
	Wrapped    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run %d at generation %d: %v", e.Run, e.Generation, e.Wrapped)
}

func (e *RunError) Unwrap() error { return e.Wrapped }

// Result is the outcome of one headless run.
type Result struct {
	Run         int                `json:"run" yaml:"run"`
	Seed        int64              `json:"seed" yaml:"seed"`
	Generations int                `json:"generations" yaml:"generations"`
	InitialLive int                `json:"initial_live" yaml:"initial_live"`
	FinalLive   int                `json:"final_live" yaml:"final_live"`
	Population  []int              `json:"population,omitempty" yaml:"population,omitempty"`
	Metrics     map[string]float64 `json:"metrics" yaml:"metrics"`

	// Final is a copy of the board after the last generation, laid out
	// like Snapshot.Cells.
	Final []uint8 `json:"-" yaml:"-"`
}
