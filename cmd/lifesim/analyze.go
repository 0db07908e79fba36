package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
)

func analyzeBoard(cmd *cobra.Command, args []string) error {
	cfg, st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	rng := life.NewRNG(st.Seed)
	wrap := st.Level.Wrap

	fmt.Printf("%s %s  rule %s  seed %d\n", st.Mode, st.Level.Name, st.RuleSpec, st.Seed)

	var c analysis.Cycle
	if st.Mode == config.Mode3D {
		g := life.NewGrid3D(st.Level.Size)
		if !patterns.Apply3D(g, st.Pattern, st.Density, rng) {
			g.Randomize(st.Density, rng)
		}
		fmt.Printf("initial live: %d\n", g.Live())
		c = analysis.DetectCycle(g, st.Rule, wrap, cfg.Generations)
	} else {
		g := life.NewGrid(st.Level.Rows, st.Level.Cols)
		if !patterns.Apply2D(g, st.Pattern) {
			g.Randomize(st.Density, rng)
		}
		fmt.Printf("initial live: %d\n", g.Live())

		r, col := g.Center()
		damage := analysis.Damage(g, st.Rule, wrap, cfg.Generations, r, col)
		fmt.Printf("damage at (%d,%d): final %d  rate %.4f\n", r, col, damage[len(damage)-1], analysis.DamageRate(damage))

		c = analysis.DetectCycle(g, st.Rule, wrap, cfg.Generations)
	}

	if c.Found {
		fmt.Printf("behaviour: %s  (enters cycle at %d, period %d, live %d)\n", c.Kind(), c.Start, c.Period, c.Live)
	} else {
		fmt.Printf("behaviour: %s after %d generations (live %d)\n", c.Kind(), c.Steps, c.Live)
	}

	if sweepSteps <= 0 {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	points, err := analysis.DensitySweep(ctx, st, 0.05, 0.95, sweepSteps, sweepRuns, cfg.Generations)
	if err != nil {
		return err
	}

	fmt.Println()
	if len(points) >= 2 {
		fmt.Println(asciigraph.Plot(analysis.FinalDensities(points),
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Precision(3),
			asciigraph.Caption("final density vs initial density (0.05 .. 0.95)"),
		))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DENSITY\tMEAN FINAL\tFINAL DENSITY\tSURVIVAL")
	for _, p := range points {
		fmt.Fprintf(w, "%.3f\t%.1f\t%.4f\t%.0f%%\n", p.Density, p.MeanFinal, p.FinalDensity, p.Survival*100)
	}
	return w.Flush()
}
