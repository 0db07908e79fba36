package analysis

import (
	"github.com/san-kum/lifesim/internal/life"
)

// Board is a steppable grid, 2D or 3D.
type Board interface {
	Step(rule life.Rule, wrap bool)
	Cells() []uint8
	Live() int
}

var (
	_ Board = (*life.Grid)(nil)
	_ Board = (*life.Grid3D)(nil)
)

// Cycle describes where a board's history repeats. Start and Period count
// generations from the state DetectCycle was given.
type Cycle struct {
	Found  bool
	Start  int
	Period int
	Steps  int
	Live   int
}

// Kind names the behaviour: extinct, still life, oscillator or unresolved.
func (c Cycle) Kind() string {
	switch {
	case !c.Found:
		return "unresolved"
	case c.Live == 0:
		return "extinct"
	case c.Period == 1:
		return "still life"
	default:
		return "oscillator"
	}
}

// DetectCycle steps b until a state repeats or maxGenerations have passed.
// b is advanced in place. Translating patterns on a wrapped board are
// reported as oscillators whose period is the time to return to the same
// cells.
func DetectCycle(b Board, rule life.Rule, wrap bool, maxGenerations int) Cycle {
	seen := map[string]int{string(b.Cells()): 0}
	for gen := 1; gen <= maxGenerations; gen++ {
		b.Step(rule, wrap)
		key := string(b.Cells())
		if start, ok := seen[key]; ok {
			return Cycle{Found: true, Start: start, Period: gen - start, Steps: gen, Live: b.Live()}
		}
		seen[key] = gen
	}
	return Cycle{Steps: maxGenerations, Live: b.Live()}
}
