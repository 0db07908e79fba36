package life

import "math/rand/v2"

// Offset3 is an (x, y, z) displacement from the cube center.
type Offset3 struct {
	DX, DY, DZ int
}

// Grid3D is a size^3 voxel board addressed by x + y*size + z*size*size.
type Grid3D struct {
	size       int
	cur, nxt   []uint8
	generation int
}

// NewGrid3D allocates an all-dead cube. A non-positive size becomes 1.
func NewGrid3D(size int) *Grid3D {
	if size <= 0 {
		size = 1
	}
	n := size * size * size
	return &Grid3D{size: size, cur: make([]uint8, n), nxt: make([]uint8, n)}
}

func (g *Grid3D) Size() int       { return g.size }
func (g *Grid3D) Len() int        { return len(g.cur) }
func (g *Grid3D) Generation() int { return g.generation }

// Cells exposes the current generation as a flat slice.
func (g *Grid3D) Cells() []uint8 { return g.cur }

// Index returns the linear index of (x, y, z). It does not bounds-check.
func (g *Grid3D) Index(x, y, z int) int {
	return x + y*g.size + z*g.size*g.size
}

// Coords is the inverse of Index.
func (g *Grid3D) Coords(i int) (x, y, z int) {
	s := g.size
	return i % s, (i / s) % s, i / (s * s)
}

func (g *Grid3D) inBounds(x, y, z int) bool {
	s := g.size
	return x >= 0 && x < s && y >= 0 && y < s && z >= 0 && z < s
}

// Alive reports whether (x, y, z) is alive. Out-of-range voxels are dead.
func (g *Grid3D) Alive(x, y, z int) bool {
	return g.inBounds(x, y, z) && g.cur[g.Index(x, y, z)] == 1
}

// Live counts the live voxels.
func (g *Grid3D) Live() int {
	n := 0
	for _, v := range g.cur {
		n += int(v)
	}
	return n
}

// NeighborCount sums the 26 Moore neighbors of (x, y, z). With wrap every
// axis wraps independently.
func (g *Grid3D) NeighborCount(x, y, z int, wrap bool) int {
	s := g.size
	n := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				nx, ny, nz := x+dx, y+dy, z+dz
				if wrap {
					nx = (nx%s + s) % s
					ny = (ny%s + s) % s
					nz = (nz%s + s) % s
				} else if !g.inBounds(nx, ny, nz) {
					continue
				}
				n += int(g.cur[g.Index(nx, ny, nz)])
			}
		}
	}
	return n
}

// Step advances one generation under rule using the spare buffer.
func (g *Grid3D) Step(rule Rule, wrap bool) {
	s := g.size
	for z := 0; z < s; z++ {
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				idx := g.Index(x, y, z)
				g.nxt[idx] = 0
				if rule.Next(g.cur[idx] == 1, g.NeighborCount(x, y, z, wrap)) {
					g.nxt[idx] = 1
				}
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// Reset kills every voxel and zeroes the generation counter.
func (g *Grid3D) Reset() {
	clear(g.cur)
	g.generation = 0
}

// Randomize makes each voxel alive with probability density and zeroes the
// generation counter.
func (g *Grid3D) Randomize(density float64, rng *rand.Rand) {
	density = clampDensity(density)
	for i := range g.cur {
		g.cur[i] = 0
		if rng.Float64() < density {
			g.cur[i] = 1
		}
	}
	g.generation = 0
}

// Center returns size/2 for all three axes.
func (g *Grid3D) Center() int { return g.size / 2 }

// PlaceOffsets sets center+offset alive for every in-bounds target.
func (g *Grid3D) PlaceOffsets(offsets []Offset3) {
	c := g.Center()
	for _, o := range offsets {
		g.Set(c+o.DX, c+o.DY, c+o.DZ, true)
	}
}

// Toggle flips (x, y, z). Out-of-range coordinates are ignored.
func (g *Grid3D) Toggle(x, y, z int) {
	if !g.inBounds(x, y, z) {
		return
	}
	g.cur[g.Index(x, y, z)] ^= 1
}

// Set writes (x, y, z). Out-of-range coordinates are ignored.
func (g *Grid3D) Set(x, y, z int, alive bool) {
	if !g.inBounds(x, y, z) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.cur[g.Index(x, y, z)] = v
}

// Clone returns an independent copy, generation included.
func (g *Grid3D) Clone() *Grid3D {
	cp := NewGrid3D(g.size)
	copy(cp.cur, g.cur)
	cp.generation = g.generation
	return cp
}

// Equal reports whether both cubes have the same size and live voxels.
func (g *Grid3D) Equal(o *Grid3D) bool {
	if o == nil || g.size != o.size {
		return false
	}
	for i := range g.cur {
		if g.cur[i] != o.cur[i] {
			return false
		}
	}
	return true
}
