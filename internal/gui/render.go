package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lifesim/internal/sim"
)

// boardLayout places a rows x cols board of square cells in a viewport.
type boardLayout struct {
	x, y       float32
	cell       float32
	rows, cols int
}

func fitBoard(width, height, rows, cols int) boardLayout {
	rows, cols = max(1, rows), max(1, cols)
	avail := float32(max(1, min(width, height)-2*margin))
	cell := min(avail/float32(cols), avail/float32(rows))
	return boardLayout{
		x:    (float32(width) - cell*float32(cols)) / 2,
		y:    (float32(height) - cell*float32(rows)) / 2,
		cell: cell,
		rows: rows,
		cols: cols,
	}
}

func (l boardLayout) cellAt(px, py float32) (r, c int, ok bool) {
	if px < l.x || py < l.y || l.cell <= 0 {
		return 0, 0, false
	}
	c = int((px - l.x) / l.cell)
	r = int((py - l.y) / l.cell)
	return r, c, r < l.rows && c < l.cols
}

func drawBoard(snap sim.Snapshot, l boardLayout) {
	rl.DrawRectangleLines(int32(l.x)-1, int32(l.y)-1, int32(l.cell*float32(l.cols))+2, int32(l.cell*float32(l.rows))+2, ColGrid)
	gap := float32(0)
	if l.cell >= 6 {
		gap = 1
	}
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			if snap.Cells[r*snap.Cols+c] == 0 {
				continue
			}
			rl.DrawRectangleV(
				rl.NewVector2(l.x+float32(c)*l.cell, l.y+float32(r)*l.cell),
				rl.NewVector2(l.cell-gap, l.cell-gap),
				ColAlive,
			)
		}
	}
}

// drawLattice renders live voxels as cubes inside the unit cube.
func (a *App) drawLattice(snap sim.Snapshot) {
	rl.BeginMode3D(a.camera)
	defer rl.EndMode3D()

	size := max(1, snap.Size)
	step := 1 / float32(size)
	voxel := rl.NewVector3(step*0.9, step*0.9, step*0.9)
	plane := size * size
	for i, v := range snap.Cells {
		if v == 0 {
			continue
		}
		x, y, z := i%size, (i/size)%size, i/plane
		pos := rl.NewVector3(
			(float32(x)+0.5)*step-0.5,
			(float32(y)+0.5)*step-0.5,
			(float32(z)+0.5)*step-0.5,
		)
		shade := uint8(120 + 135*y/max(1, size-1))
		rl.DrawCubeV(pos, voxel, rl.NewColor(shade, shade, uint8(min(255, int(shade)+20)), 255))
	}
	rl.DrawCubeWires(rl.NewVector3(0, 0, 0), 1, 1, 1, ColTextDim)
}

func drawSparkline(values []float64, x, y, w, h int32) {
	rl.DrawRectangleLines(x, y, w, h, ColGrid)
	if len(values) < 2 {
		return
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	dx := float32(w) / float32(len(values)-1)
	prev := rl.NewVector2(float32(x), float32(y+h)-float32((values[0]-lo)/span)*float32(h))
	for i := 1; i < len(values); i++ {
		cur := rl.NewVector2(float32(x)+dx*float32(i), float32(y+h)-float32((values[i]-lo)/span)*float32(h))
		rl.DrawLineV(prev, cur, ColAccent)
		prev = cur
	}
}
