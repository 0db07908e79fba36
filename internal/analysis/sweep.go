package analysis

import (
	"context"
	"fmt"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/sim"
)

// SweepPoint is the ensemble outcome at one initial density.
type SweepPoint struct {
	Density      float64 `json:"density" yaml:"density"`
	MeanFinal    float64 `json:"mean_final" yaml:"mean_final"`
	FinalDensity float64 `json:"final_density" yaml:"final_density"`
	Survival     float64 `json:"survival" yaml:"survival"`
}

// DensitySweep runs an ensemble of random boards at evenly spaced densities
// in [lo, hi] and records how much of the board is alive at the end.
// Settings.Pattern is ignored.
func DensitySweep(ctx context.Context, st config.Settings, lo, hi float64, steps, runs, generations int) ([]SweepPoint, error) {
	if steps < 2 {
		steps = 2
	}
	if lo < 0 || hi > 1 || lo > hi {
		return nil, fmt.Errorf("%w: sweep [%v, %v]", config.ErrInvalidDensity, lo, hi)
	}

	cells := st.Level.Rows * st.Level.Cols
	if st.Mode == config.Mode3D {
		cells = st.Level.Size * st.Level.Size * st.Level.Size
	}

	step := (hi - lo) / float64(steps-1)
	points := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		run := st
		run.Pattern = ""
		run.Density = lo + float64(i)*step

		results, err := sim.NewEnsemble(run, runs).Run(ctx, generations)
		if err != nil {
			return nil, fmt.Errorf("density %.3f: %w", run.Density, err)
		}

		p := SweepPoint{Density: run.Density}
		alive := 0
		for _, r := range results {
			p.MeanFinal += float64(r.FinalLive)
			if r.FinalLive > 0 {
				alive++
			}
		}
		p.MeanFinal /= float64(len(results))
		p.Survival = float64(alive) / float64(len(results))
		if cells > 0 {
			p.FinalDensity = p.MeanFinal / float64(cells)
		}
		points = append(points, p)
	}
	return points, nil
}

// FinalDensities extracts the series to chart.
func FinalDensities(points []SweepPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.FinalDensity
	}
	return out
}
