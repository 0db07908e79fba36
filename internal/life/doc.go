// Package life provides the cellular automaton engines for lifesim.
//
// The package defines the rule set and the two grid types:
//
//   - [Rule]: birth/survival neighbor-count sets parsed from "B3/S23" strings
//   - [Grid]: rows x cols board with an 8-cell Moore neighborhood
//   - [Grid3D]: size^3 cube with a 26-cell Moore neighborhood
//
// Both grids are double buffered: a step reads generation N from the current
// buffer, writes generation N+1 into the spare one and swaps them.
//
// # Example
//
//	g := life.NewGrid(20, 20)
//	g.Randomize(0.25, life.NewRNG(42))
//	for i := 0; i < 100; i++ {
//		g.Step(life.Classic, false)
//	}
//	fmt.Println(g.Generation(), g.Live())
//
// # Out-of-range coordinates
//
// Nothing in this package returns an error. Reads outside the grid report a
// dead cell, writes outside the grid are ignored.
//
// # Thread Safety
//
// Grid and Grid3D are NOT thread-safe. Callers that step from a timer and
// mutate from user input must serialize access, see sim.Session.
package life
