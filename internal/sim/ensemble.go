package sim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
)

// board is the part of Grid and Grid3D a headless run needs.
type board interface {
	Step(rule life.Rule, wrap bool)
	Generation() int
	Live() int
	Cells() []uint8
	Reset()
}

// Ensemble runs independent headless simulations concurrently. Run i uses
// seed Seed+i, so results are reproducible per run regardless of
// scheduling.
type Ensemble struct {
	settings config.Settings
	runs     int
	limit    int
	history  bool
	metrics  func() []Metric
}

func NewEnsemble(st config.Settings, runs int) *Ensemble {
	return &Ensemble{settings: st, runs: runs, limit: runtime.GOMAXPROCS(0)}
}

// WithLimit caps the number of runs in flight.
func (e *Ensemble) WithLimit(n int) *Ensemble {
	if n > 0 {
		e.limit = n
	}
	return e
}

// WithMetrics sets a factory for per-run metrics. It is called once per run
// so metric state is never shared.
func (e *Ensemble) WithMetrics(f func() []Metric) *Ensemble {
	e.metrics = f
	return e
}

// WithHistory keeps the population of every generation in the results.
func (e *Ensemble) WithHistory(keep bool) *Ensemble {
	e.history = keep
	return e
}

// Run advances every run for the given number of generations.
func (e *Ensemble) Run(ctx context.Context, generations int) ([]*Result, error) {
	if e.runs <= 0 {
		return nil, ErrNoRuns
	}
	if generations <= 0 {
		return nil, ErrGenerations
	}

	st := e.settings
	var pool2d *Pool[*life.Grid]
	var pool3d *Pool[*life.Grid3D]
	if st.Mode == config.Mode3D {
		pool3d = NewPool(func() *life.Grid3D { return life.NewGrid3D(st.Level.Size) })
	} else {
		pool2d = NewPool(func() *life.Grid { return life.NewGrid(st.Level.Rows, st.Level.Cols) })
	}

	results := make([]*Result, e.runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for i := 0; i < e.runs; i++ {
		g.Go(func() error {
			seed := st.Seed + int64(i)
			rng := life.NewRNG(seed)

			var b board
			if pool3d != nil {
				g3 := pool3d.Get()
				defer pool3d.Put(g3)
				if !patterns.Apply3D(g3, st.Pattern, st.Density, rng) {
					g3.Randomize(st.Density, rng)
				}
				b = g3
			} else {
				g2 := pool2d.Get()
				defer pool2d.Put(g2)
				if !patterns.Apply2D(g2, st.Pattern) {
					g2.Randomize(st.Density, rng)
				}
				b = g2
			}

			res, err := e.runOne(ctx, i, b, generations)
			if err != nil {
				return err
			}
			res.Seed = seed
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Ensemble) runOne(ctx context.Context, run int, b board, generations int) (*Result, error) {
	var metrics []Metric
	if e.metrics != nil {
		metrics = e.metrics()
	}
	for _, m := range metrics {
		m.Reset()
	}

	res := &Result{
		Run:         run,
		InitialLive: b.Live(),
		Metrics:     make(map[string]float64),
	}
	if e.history {
		res.Population = make([]int, 0, generations+1)
		res.Population = append(res.Population, res.InitialLive)
	}
	for _, m := range metrics {
		m.Observe(b.Generation(), res.InitialLive)
	}

	for i := 0; i < generations; i++ {
		select {
		case <-ctx.Done():
			return nil, &RunError{Run: run, Generation: b.Generation(), Wrapped: ctx.Err()}
		default:
		}

		b.Step(e.settings.Rule, e.settings.Level.Wrap)
		live := b.Live()
		for _, m := range metrics {
			m.Observe(b.Generation(), live)
		}
		if e.history {
			res.Population = append(res.Population, live)
		}
	}

	res.Generations = b.Generation()
	res.FinalLive = b.Live()
	res.Final = append([]uint8(nil), b.Cells()...)
	for _, m := range metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res, nil
}
