package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/life"
)

var _ = Describe("Grid3D", func() {
	It("round-trips linear indices", func() {
		g := life.NewGrid3D(6)
		for _, p := range [][3]int{{0, 0, 0}, {5, 0, 0}, {0, 5, 0}, {0, 0, 5}, {1, 2, 3}, {5, 5, 5}} {
			i := g.Index(p[0], p[1], p[2])
			Expect(i).To(Equal(p[0] + p[1]*6 + p[2]*36))
			x, y, z := g.Coords(i)
			Expect([3]int{x, y, z}).To(Equal(p))
		}
	})

	Describe("NeighborCount", func() {
		var g *life.Grid3D

		BeforeEach(func() {
			g = life.NewGrid3D(5)
		})

		It("counts all 26 neighbors of an interior voxel", func() {
			for z := 1; z <= 3; z++ {
				for y := 1; y <= 3; y++ {
					for x := 1; x <= 3; x++ {
						g.Set(x, y, z, true)
					}
				}
			}
			Expect(g.NeighborCount(2, 2, 2, false)).To(Equal(26))
			Expect(g.NeighborCount(0, 0, 0, false)).To(Equal(1))
		})

		It("ignores voxels beyond the faces without wrap", func() {
			g.Set(4, 4, 4, true)
			Expect(g.NeighborCount(0, 0, 0, false)).To(Equal(0))
		})

		It("wraps every axis independently", func() {
			g.Set(4, 4, 4, true)
			Expect(g.NeighborCount(0, 0, 0, true)).To(Equal(1))

			g.Reset()
			g.Set(2, 2, 4, true)
			Expect(g.NeighborCount(2, 2, 0, true)).To(Equal(1))
			Expect(g.NeighborCount(2, 2, 0, false)).To(Equal(0))

			g.Reset()
			g.Set(0, 2, 2, true)
			Expect(g.NeighborCount(4, 2, 2, true)).To(Equal(1))

			g.Reset()
			g.Set(2, 4, 2, true)
			Expect(g.NeighborCount(2, 0, 2, true)).To(Equal(1))
		})
	})

	Describe("Step", func() {
		rule := life.ParseRule("B5/S4,5")

		It("kills an isolated voxel", func() {
			g := life.NewGrid3D(3)
			g.Set(1, 1, 1, true)
			g.Step(rule, false)
			Expect(g.Live()).To(Equal(0))
			Expect(g.Generation()).To(Equal(1))
		})

		It("reads only the previous generation", func() {
			// Under B1/S a lone voxel spawns its 26 neighbors and dies. An
			// in-place update would cascade births across the whole cube.
			g := life.NewGrid3D(7)
			g.Set(3, 3, 3, true)
			g.Step(life.ParseRule("B1/S"), false)
			Expect(g.Live()).To(Equal(26))
			Expect(g.Alive(3, 3, 3)).To(BeFalse())
			Expect(g.Alive(2, 2, 2)).To(BeTrue())
			Expect(g.Alive(1, 1, 1)).To(BeFalse())
		})
	})

	Describe("Randomize", func() {
		It("fills nothing at density 0 and everything at density 1", func() {
			g := life.NewGrid3D(4)
			g.Randomize(0, life.NewRNG(5))
			Expect(g.Live()).To(Equal(0))
			g.Randomize(1, life.NewRNG(5))
			Expect(g.Live()).To(Equal(64))
			Expect(g.Generation()).To(Equal(0))
		})
	})

	It("ignores out-of-range writes", func() {
		g := life.NewGrid3D(3)
		g.Set(3, 0, 0, true)
		g.Toggle(0, -1, 0)
		g.PlaceOffsets([]life.Offset3{{5, 5, 5}, {0, 0, 0}})
		Expect(g.Live()).To(Equal(1))
		Expect(g.Alive(1, 1, 1)).To(BeTrue())
	})
})
