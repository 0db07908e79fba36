package metrics

import "github.com/san-kum/lifesim/internal/sim"

var _ sim.Metric = (*Stability)(nil)

// Stability is the fraction of generations whose population stayed within
// tolerance of the previous one. A board that has settled into still lifes
// and blinkers scores close to 1.
type Stability struct {
	name      string
	tolerance float64
	prev      int
	seen      bool
	steady    int
	samples   int
}

func NewStability(tolerance float64) *Stability {
	return &Stability{
		name:      "stability",
		tolerance: tolerance,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(generation, live int) {
	if !s.seen {
		s.prev, s.seen = live, true
		return
	}
	s.samples++
	base := max(s.prev, 1)
	if float64(abs(live-s.prev))/float64(base) <= s.tolerance {
		s.steady++
	}
	s.prev = live
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return float64(s.steady) / float64(s.samples)
}

func (s *Stability) Reset() {
	s.prev = 0
	s.seen = false
	s.steady = 0
	s.samples = 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
