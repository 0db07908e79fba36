package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/life"
)

var gliderOffsets = []life.Offset{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

func shifted(offsets []life.Offset, dr, dc int) []life.Offset {
	out := make([]life.Offset, len(offsets))
	for i, o := range offsets {
		out[i] = life.Offset{DR: o.DR + dr, DC: o.DC + dc}
	}
	return out
}

var _ = Describe("Grid", func() {
	Describe("NeighborCount", func() {
		var g *life.Grid

		BeforeEach(func() {
			g = life.NewGrid(5, 5)
		})

		It("ignores cells beyond the edge without wrap", func() {
			g.Set(4, 4, true)
			g.Set(4, 2, true)
			Expect(g.NeighborCount(0, 0, false)).To(Equal(0))
			Expect(g.NeighborCount(0, 2, false)).To(Equal(0))
		})

		It("wraps rows and columns on a torus", func() {
			g.Set(4, 4, true)
			Expect(g.NeighborCount(0, 0, true)).To(Equal(1))

			g.Reset()
			g.Set(4, 2, true)
			Expect(g.NeighborCount(0, 2, true)).To(Equal(1))

			g.Reset()
			g.Set(0, 2, true)
			Expect(g.NeighborCount(4, 2, true)).To(Equal(1))

			g.Reset()
			g.Set(2, 0, true)
			Expect(g.NeighborCount(2, 4, true)).To(Equal(1))
		})

		It("counts all eight neighbors of an interior cell", func() {
			for r := 1; r <= 3; r++ {
				for c := 1; c <= 3; c++ {
					g.Set(r, c, true)
				}
			}
			Expect(g.NeighborCount(2, 2, false)).To(Equal(8))
			Expect(g.NeighborCount(0, 0, false)).To(Equal(1))
		})
	})

	Describe("Step", func() {
		It("kills an isolated cell", func() {
			g := life.NewGrid(3, 3)
			g.Set(1, 1, true)
			g.Step(life.Classic, false)
			Expect(g.Live()).To(Equal(0))
			Expect(g.Generation()).To(Equal(1))
		})

		It("keeps a block as a still life", func() {
			g := life.NewGrid(4, 4)
			g.Set(1, 1, true)
			g.Set(1, 2, true)
			g.Set(2, 1, true)
			g.Set(2, 2, true)
			start := g.Clone()

			for i := 1; i <= 10; i++ {
				g.Step(life.Classic, false)
				Expect(g.Generation()).To(Equal(i))
				Expect(g.Live()).To(Equal(4))
				Expect(g.Equal(start)).To(BeTrue())
			}
		})

		It("oscillates a blinker with period two", func() {
			g := life.NewGrid(5, 5)
			g.Set(1, 2, true)
			g.Set(2, 2, true)
			g.Set(3, 2, true)
			start := g.Clone()

			g.Step(life.Classic, false)
			Expect(g.Alive(2, 1)).To(BeTrue())
			Expect(g.Alive(2, 2)).To(BeTrue())
			Expect(g.Alive(2, 3)).To(BeTrue())
			Expect(g.Live()).To(Equal(3))

			g.Step(life.Classic, false)
			Expect(g.Equal(start)).To(BeTrue())
		})

		It("translates a glider one cell diagonally every four steps", func() {
			g := life.NewGrid(20, 20)
			g.PlacePattern(gliderOffsets)

			for i := 0; i < 4; i++ {
				g.Step(life.Classic, false)
			}

			want := life.NewGrid(20, 20)
			want.PlacePattern(shifted(gliderOffsets, 1, 1))
			Expect(g.String()).To(Equal(want.String()))
			Expect(g.Generation()).To(Equal(4))
		})

		It("lets a glider cross the seam of a wrapped board", func() {
			g := life.NewGrid(8, 8)
			g.PlacePattern(gliderOffsets)
			start := g.Clone()

			// 8 cells of travel on an 8x8 torus brings it home.
			for i := 0; i < 32; i++ {
				g.Step(life.Classic, true)
			}
			Expect(g.Equal(start)).To(BeTrue())
		})

		It("dies out entirely under an empty rule", func() {
			g := life.NewGrid(6, 6)
			g.Randomize(1, life.NewRNG(1))
			g.Step(life.ParseRule("nonsense"), true)
			Expect(g.Live()).To(Equal(0))
		})
	})

	Describe("Randomize", func() {
		It("produces an empty board at density 0", func() {
			g := life.NewGrid(10, 7)
			g.Randomize(0, life.NewRNG(3))
			Expect(g.Live()).To(Equal(0))
		})

		It("produces a full board at density 1", func() {
			g := life.NewGrid(10, 7)
			g.Randomize(1, life.NewRNG(3))
			Expect(g.Live()).To(Equal(70))
		})

		It("resets the generation counter", func() {
			g := life.NewGrid(4, 4)
			g.Step(life.Classic, false)
			g.Randomize(0.5, life.NewRNG(9))
			Expect(g.Generation()).To(Equal(0))
		})

		It("is reproducible for a seed", func() {
			a, b := life.NewGrid(12, 12), life.NewGrid(12, 12)
			a.Randomize(0.3, life.NewRNG(77))
			b.Randomize(0.3, life.NewRNG(77))
			Expect(a.Equal(b)).To(BeTrue())
		})
	})

	Describe("mutation", func() {
		It("ignores out-of-range coordinates", func() {
			g := life.NewGrid(3, 3)
			Expect(func() {
				g.Toggle(-1, 0)
				g.Toggle(3, 3)
				g.Set(0, 99, true)
				g.PlacePattern([]life.Offset{{-10, -10}, {10, 10}})
			}).NotTo(Panic())
			Expect(g.Live()).To(Equal(0))
			Expect(g.Alive(-1, -1)).To(BeFalse())
		})

		It("toggles a cell back and forth", func() {
			g := life.NewGrid(3, 3)
			g.Toggle(1, 2)
			Expect(g.Alive(1, 2)).To(BeTrue())
			g.Toggle(1, 2)
			Expect(g.Alive(1, 2)).To(BeFalse())
		})

		It("places patterns relative to the center and drops what does not fit", func() {
			g := life.NewGrid(5, 5)
			g.PlacePattern([]life.Offset{{0, 0}, {-2, -2}, {2, 2}, {3, 0}})
			Expect(g.Alive(2, 2)).To(BeTrue())
			Expect(g.Alive(0, 0)).To(BeTrue())
			Expect(g.Alive(4, 4)).To(BeTrue())
			Expect(g.Live()).To(Equal(3))
		})

		It("clears everything on Reset", func() {
			g := life.NewGrid(4, 4)
			g.Randomize(1, life.NewRNG(1))
			g.Step(life.Classic, false)
			g.Reset()
			Expect(g.Live()).To(Equal(0))
			Expect(g.Generation()).To(Equal(0))
		})
	})

	It("clamps non-positive dimensions", func() {
		g := life.NewGrid(0, -3)
		Expect(g.Rows()).To(Equal(1))
		Expect(g.Cols()).To(Equal(1))
	})
})
