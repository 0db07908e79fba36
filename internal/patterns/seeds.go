package patterns

import (
	"math/rand/v2"

	"github.com/san-kum/lifesim/internal/life"
)

const seedHalfWidth = 3

type seedFunc func(g *life.Grid3D, density float64, rng *rand.Rand)

var seeds3D = map[string]seedFunc{
	"cluster": func(g *life.Grid3D, _ float64, _ *rand.Rand) { g.PlaceOffsets(cube(1)) },
	"cross":   func(g *life.Grid3D, _ float64, _ *rand.Rand) { g.PlaceOffsets(cross(seedHalfWidth)) },
	"shell":   func(g *life.Grid3D, _ float64, _ *rand.Rand) { g.PlaceOffsets(shell(seedHalfWidth)) },
	"random": func(g *life.Grid3D, density float64, rng *rand.Rand) {
		g.Randomize(density, rng)
	},
}

// cube returns every offset with all |d| <= h.
func cube(h int) []life.Offset3 {
	out := make([]life.Offset3, 0, (2*h+1)*(2*h+1)*(2*h+1))
	for dz := -h; dz <= h; dz++ {
		for dy := -h; dy <= h; dy++ {
			for dx := -h; dx <= h; dx++ {
				out = append(out, life.Offset3{DX: dx, DY: dy, DZ: dz})
			}
		}
	}
	return out
}

// cross returns three axis-aligned bars of length 2h+1 through the origin.
func cross(h int) []life.Offset3 {
	out := make([]life.Offset3, 0, 3*(2*h+1))
	for d := -h; d <= h; d++ {
		out = append(out,
			life.Offset3{DX: d},
			life.Offset3{DY: d},
			life.Offset3{DZ: d},
		)
	}
	return out
}

// shell keeps the offsets of cube(h) where at least one |d| == h.
func shell(h int) []life.Offset3 {
	all := cube(h)
	out := all[:0]
	for _, o := range all {
		if abs(o.DX) == h || abs(o.DY) == h || abs(o.DZ) == h {
			out = append(out, o)
		}
	}
	return out
}

// Offsets3D returns the offsets of a procedural seed. The random seed has no
// fixed shape and returns nil, as does an unknown name.
func Offsets3D(name string) []life.Offset3 {
	switch name {
	case "cluster":
		return cube(1)
	case "cross":
		return cross(seedHalfWidth)
	case "shell":
		return shell(seedHalfWidth)
	}
	return nil
}

// Apply3D resets g and applies the named seed. density and rng are only used
// by the random seed. Unknown names leave g untouched and report false.
func Apply3D(g *life.Grid3D, name string, density float64, rng *rand.Rand) bool {
	fn, ok := seeds3D[name]
	if !ok {
		return false
	}
	g.Reset()
	fn(g, density, rng)
	return true
}

// Names3D lists the 3D seed names in order.
func Names3D() []string {
	return []string{"cluster", "cross", "random", "shell"}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
