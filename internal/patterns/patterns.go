// Package patterns holds the named starting configurations: literal offset
// lists for the 2D board and procedural seeds for the 3D cube.
package patterns

import (
	"sort"

	"github.com/san-kum/lifesim/internal/life"
)

// Library2D maps a pattern name to offsets from the grid center.
var Library2D = map[string][]life.Offset{
	"glider": {
		{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
	},
	"lwss": {
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 0}, {1, 4},
		{2, 4},
		{3, 0}, {3, 3},
	},
	"pulsar": {
		{-6, -4}, {-6, -3}, {-6, -2}, {-6, 2}, {-6, 3}, {-6, 4},
		{-4, -6}, {-3, -6}, {-2, -6}, {2, -6}, {3, -6}, {4, -6},
		{-1, -4}, {-1, -3}, {-1, -2}, {-1, 2}, {-1, 3}, {-1, 4},
		{-4, -1}, {-3, -1}, {-2, -1}, {2, -1}, {3, -1}, {4, -1},
		{-4, 1}, {-3, 1}, {-2, 1}, {2, 1}, {3, 1}, {4, 1},
		{1, -4}, {1, -3}, {1, -2}, {1, 2}, {1, 3}, {1, 4},
		{-4, 6}, {-3, 6}, {-2, 6}, {2, 6}, {3, 6}, {4, 6},
		{6, -4}, {6, -3}, {6, -2}, {6, 2}, {6, 3}, {6, 4},
	},
	"gosper": {
		{0, 24},
		{1, 22}, {1, 24},
		{2, 12}, {2, 13}, {2, 20}, {2, 21}, {2, 34}, {2, 35},
		{3, 11}, {3, 15}, {3, 20}, {3, 21}, {3, 34}, {3, 35},
		{4, 0}, {4, 1}, {4, 10}, {4, 16}, {4, 20}, {4, 21},
		{5, 0}, {5, 1}, {5, 10}, {5, 14}, {5, 16}, {5, 17}, {5, 22}, {5, 24},
		{6, 10}, {6, 16}, {6, 24},
		{7, 11}, {7, 15},
		{8, 12}, {8, 13},
	},
}

var descriptions = map[string]string{
	"glider":  "5-cell spaceship, moves one cell diagonally every 4 generations",
	"lwss":    "lightweight spaceship, moves horizontally",
	"pulsar":  "period-3 oscillator, needs at least 13x13",
	"gosper":  "Gosper glider gun, needs at least 9x36",
	"cluster": "solid 3x3x3 cube at the center",
	"cross":   "three orthogonal 7-voxel bars through the center",
	"shell":   "hollow cube surface with half-width 3",
	"random":  "uniform random fill at the level density",
}

// Offsets returns the offsets of a 2D pattern, or nil for an unknown name.
func Offsets(name string) []life.Offset {
	return Library2D[name]
}

// Apply2D resets g and places the named pattern at its center. Unknown names
// leave g untouched and report false.
func Apply2D(g *life.Grid, name string) bool {
	offsets, ok := Library2D[name]
	if !ok {
		return false
	}
	g.Reset()
	g.PlacePattern(offsets)
	return true
}

// Names2D lists the 2D pattern names in order.
func Names2D() []string {
	names := make([]string, 0, len(Library2D))
	for name := range Library2D {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line description of a 2D pattern or 3D seed.
func Describe(name string) string {
	return descriptions[name]
}
