package metrics

import "github.com/san-kum/lifesim/internal/sim"

var (
	_ sim.Metric = (*Peak)(nil)
	_ sim.Metric = (*MeanPopulation)(nil)
	_ sim.Metric = (*Extinction)(nil)
)

// Peak is the largest population seen.
type Peak struct {
	peak int
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak_live" }

func (p *Peak) Observe(generation, live int) {
	p.peak = max(p.peak, live)
}

func (p *Peak) Value() float64 { return float64(p.peak) }
func (p *Peak) Reset()         { p.peak = 0 }

type MeanPopulation struct {
	total   int
	samples int
}

func NewMeanPopulation() *MeanPopulation { return &MeanPopulation{} }

func (m *MeanPopulation) Name() string { return "mean_live" }

func (m *MeanPopulation) Observe(generation, live int) {
	m.total += live
	m.samples++
}

func (m *MeanPopulation) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.total) / float64(m.samples)
}

func (m *MeanPopulation) Reset() {
	m.total = 0
	m.samples = 0
}

// Extinction records the first generation with no live cells, or -1 while
// the board is alive.
type Extinction struct {
	at int
}

func NewExtinction() *Extinction { return &Extinction{at: -1} }

func (e *Extinction) Name() string { return "extinct_at" }

func (e *Extinction) Observe(generation, live int) {
	if live == 0 && e.at < 0 {
		e.at = generation
	}
}

func (e *Extinction) Value() float64 { return float64(e.at) }
func (e *Extinction) Reset()         { e.at = -1 }

// Standard returns the metric set used by headless runs.
func Standard() []sim.Metric {
	return []sim.Metric{
		NewPeak(),
		NewMeanPopulation(),
		NewExtinction(),
		NewStability(0.02),
	}
}
