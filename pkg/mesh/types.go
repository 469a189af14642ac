// Package mesh tessellates parametric and height-field surfaces into indexed triangle meshes.
package mesh

import "gonum.org/v1/gonum/spatial/r3"

// SurfaceFunc maps normalized lattice coordinates u, v in [0, 1] to a point in space.
type SurfaceFunc func(u, v float64) r3.Vec

// HeightFunc returns the height of a height field at world coordinates x, y.
type HeightFunc func(x, y float64) float64

// Surface describes what to tessellate and how its parameter domain closes on itself.
type Surface struct {
	Name    string
	Func    SurfaceFunc
	ClosedU bool // u=0 and u=1 coincide (sphere azimuth, torus ring)
	ClosedV bool // v=0 and v=1 coincide (torus tube)
}

// BuildOptions controls optional behaviour of Generate.
type BuildOptions struct {
	// Workers > 1 samples lattice rows concurrently. Output is identical to the sequential run.
	Workers int

	// WeldSeams merges the normals of the duplicated seam vertices of closed axes.
	// Positions stay duplicated.
	WeldSeams bool

	// ExactSeam copies the u=0 column of a closed-in-U surface into the u=1 column
	// instead of evaluating it, making the seam bit-exact.
	ExactSeam bool
}

// Vertex is one interleaved vertex ready for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min r3.Vec
	Max r3.Vec
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Mesh holds positions, triangle indices and per-vertex normals.
// A Mesh is never modified after construction; every accessor returns a copy.
type Mesh struct {
	positions []r3.Vec
	normals   []r3.Vec
	indices   []uint32

	uSegments int
	vSegments int
	closedU   bool
	closedV   bool
	welded    bool

	bounds     Bounds
	degenerate int
}

// Buffer layout of the packed float32 buffers.
const (
	PositionComponents = 3
	NormalComponents   = 3
	InterleavedStride  = PositionComponents + NormalComponents
)
