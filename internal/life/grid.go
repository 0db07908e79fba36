package life

import (
	"math/rand/v2"
	"strings"
)

// Offset is a (row, col) displacement from the grid center.
type Offset struct {
	DR, DC int
}

// Grid is a rows x cols Game of Life board stored in row-major order.
type Grid struct {
	rows, cols int
	cur, nxt   []uint8
	generation int
}

// NewGrid allocates an all-dead grid. Non-positive dimensions become 1.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	n := rows * cols
	return &Grid{rows: rows, cols: cols, cur: make([]uint8, n), nxt: make([]uint8, n)}
}

func (g *Grid) Rows() int       { return g.rows }
func (g *Grid) Cols() int       { return g.cols }
func (g *Grid) Generation() int { return g.generation }

// Cells exposes the current generation in row-major order. Callers must not
// retain it across a Step.
func (g *Grid) Cells() []uint8 { return g.cur }

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Alive reports whether (r, c) is alive. Out-of-range cells are dead.
func (g *Grid) Alive(r, c int) bool {
	return g.inBounds(r, c) && g.cur[r*g.cols+c] == 1
}

// Live counts the live cells.
func (g *Grid) Live() int {
	n := 0
	for _, v := range g.cur {
		n += int(v)
	}
	return n
}

// NeighborCount sums the 8 Moore neighbors of (r, c). With wrap the board is
// a torus; without it, neighbors beyond the edge count as dead.
func (g *Grid) NeighborCount(r, c int, wrap bool) int {
	rows, cols := g.rows, g.cols
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if wrap {
				nr = (nr%rows + rows) % rows
				nc = (nc%cols + cols) % cols
			} else if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			n += int(g.cur[nr*cols+nc])
		}
	}
	return n
}

// Step advances one generation under rule. All counts are taken from the
// current buffer before the buffers are swapped.
func (g *Grid) Step(rule Rule, wrap bool) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := r*g.cols + c
			g.nxt[idx] = 0
			if rule.Next(g.cur[idx] == 1, g.NeighborCount(r, c, wrap)) {
				g.nxt[idx] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// Reset kills every cell and zeroes the generation counter.
func (g *Grid) Reset() {
	clear(g.cur)
	g.generation = 0
}

// Randomize makes each cell alive with probability density and zeroes the
// generation counter.
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	density = clampDensity(density)
	for i := range g.cur {
		g.cur[i] = 0
		if rng.Float64() < density {
			g.cur[i] = 1
		}
	}
	g.generation = 0
}

// Center returns (rows/2, cols/2).
func (g *Grid) Center() (int, int) { return g.rows / 2, g.cols / 2 }

// PlacePattern sets the cells at center+offset alive. Offsets that land
// outside the grid are dropped.
func (g *Grid) PlacePattern(offsets []Offset) {
	cr, cc := g.Center()
	for _, o := range offsets {
		g.Set(cr+o.DR, cc+o.DC, true)
	}
}

// Toggle flips (r, c). Out-of-range coordinates are ignored.
func (g *Grid) Toggle(r, c int) {
	if !g.inBounds(r, c) {
		return
	}
	g.cur[r*g.cols+c] ^= 1
}

// Set writes (r, c). Out-of-range coordinates are ignored.
func (g *Grid) Set(r, c int, alive bool) {
	if !g.inBounds(r, c) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.cur[r*g.cols+c] = v
}

// Clone returns an independent copy, generation included.
func (g *Grid) Clone() *Grid {
	cp := NewGrid(g.rows, g.cols)
	copy(cp.cur, g.cur)
	cp.generation = g.generation
	return cp
}

// Equal reports whether both grids have the same shape and live cells.
// Generation counters are not compared.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cur {
		if g.cur[i] != o.cur[i] {
			return false
		}
	}
	return true
}

// String dumps the board one row per line, '#' alive and '.' dead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cur[r*g.cols+c] == 1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
