// Package analysis characterizes the long-run behaviour of a board.
//
//   - [DetectCycle]: finds when a board revisits an earlier state
//   - [Damage]: spreads a single-cell perturbation and measures divergence
//   - [DamageRate]: log growth rate of a damage series
//   - [DensitySweep]: final population as a function of initial density
//
// # Classifying a pattern
//
//	g := life.NewGrid(20, 20)
//	patterns.Apply2D(g, "pulsar")
//	c := analysis.DetectCycle(g.Clone(), life.Classic, false, 500)
//	fmt.Println(c.Kind(), c.Period) // oscillator 3
//
// A positive damage rate means a one-cell change keeps spreading, the
// cellular analogue of sensitive dependence.
package analysis
