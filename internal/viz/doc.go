// Package viz provides terminal-based visualization for the life simulator.
//
// The package implements two Bubble Tea programs:
//
//   - [LiveModel]: the interactive session view, a 2D board drawn two
//     characters per cell or a 3D lattice projected onto a braille canvas
//   - [AmbientModel]: the self-sustaining background field, one cell per
//     braille dot
//
// [Canvas] is the braille pixel canvas both use, and [PopulationChart] wraps
// asciigraph for population plots.
//
// # Key Bindings
//
//	Space - Start/Pause the session
//	N     - Single step while paused
//	R     - Randomize, C - Clear
//	Tab   - Select pattern, P - Apply it
//	1-3   - Beginner/Intermediate/Advanced level
//	M     - Switch 2D/3D
//	[]    - Slower/Faster
//	?     - Show help overlay
package viz
