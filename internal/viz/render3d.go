package viz

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Camera orbits the unit cube centered on the origin.
type Camera struct {
	RotX, RotY float64
	Zoom       float64
	Distance   float64
	Near       float64
}

const (
	minZoom = 0.3
	maxZoom = 4
)

func NewCamera() *Camera {
	return &Camera{RotX: -0.45, RotY: 0.6, Zoom: 1, Distance: 3, Near: 0.1}
}

func (c *Camera) Orbit(dx, dy float64) {
	c.RotY += dx
	c.RotX = math.Max(-math.Pi/2, math.Min(math.Pi/2, c.RotX+dy))
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(maxZoom, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(minZoom, c.Zoom/1.2) }

// RotatePoint applies the camera's yaw then pitch.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}

// Project converts world coordinates to screen coordinates on a sw x sh
// surface. It returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Distance
	if rot.Z >= dist-c.Near {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	pScale := float64(min(sw, sh)) / 2.5
	sx := int(math.Round(rot.X*scale*pScale)) + sw/2
	sy := int(math.Round(-rot.Y*scale*pScale)) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// VoxelCenter maps a cell of a size^3 lattice into the unit cube.
func VoxelCenter(x, y, z, size int) Vec3 {
	s := float64(max(1, size))
	return Vec3{
		X: (float64(x)+0.5)/s - 0.5,
		Y: (float64(y)+0.5)/s - 0.5,
		Z: (float64(z)+0.5)/s - 0.5,
	}
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct{ Edges []Edge }

func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }

// CubeWireframe is the outline of a cube of the given edge length.
func CubeWireframe(size float64) *Wireframe {
	w, s := &Wireframe{}, size/2
	v := []Vec3{{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s}, {-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}
	ei := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	for _, e := range ei {
		w.AddEdge(v[e[0]], v[e[1]])
	}
	return w
}

// RenderWireframe draws every edge with at least one visible end.
func RenderWireframe(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	dw, dh := c.DotWidth(), c.DotHeight()
	for _, e := range w.Edges {
		x1, y1, _, v1 := cam.Project(e.Start, dw, dh)
		x2, y2, _, v2 := cam.Project(e.End, dw, dh)
		if v1 || v2 {
			c.DrawLine(x1, y1, x2, y2)
		}
	}
}

// ProjectedVoxel is a live voxel in screen space.
type ProjectedVoxel struct {
	X, Y  int
	Depth float64
}

// ProjectVoxels projects the live cells of a size^3 lattice, indexed
// x + y*size + z*size*size, onto a sw x sh surface, nearest last.
func ProjectVoxels(cells []uint8, size int, cam *Camera, sw, sh int) []ProjectedVoxel {
	out := make([]ProjectedVoxel, 0, 64)
	plane := size * size
	for i, v := range cells {
		if v == 0 {
			continue
		}
		x, y, z := i%size, (i/size)%size, i/plane
		px, py, d, ok := cam.Project(VoxelCenter(x, y, z, size), sw, sh)
		if ok {
			out = append(out, ProjectedVoxel{px, py, d})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// RenderVoxels draws the lattice outline and one dot per visible live voxel.
// It returns the number of voxels drawn.
func RenderVoxels(c *Canvas, cells []uint8, size int, cam *Camera) int {
	RenderWireframe(c, CubeWireframe(1), cam)
	pts := ProjectVoxels(cells, size, cam, c.DotWidth(), c.DotHeight())
	for _, p := range pts {
		c.Set(p.X, p.Y)
	}
	return len(pts)
}
