package mesh

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Generate samples, triangulates and shades a surface into a new Mesh.
// Nothing is allocated when the resolution is invalid.
func Generate(s Surface, uSegments, vSegments int, opts BuildOptions) (*Mesh, error) {
	if err := CheckResolution(uSegments, vSegments); err != nil {
		return nil, err
	}
	if s.Func == nil {
		return nil, errors.New("generate: surface has no function")
	}

	positions, err := sample(s.Func, uSegments, vSegments, s.ClosedU && opts.ExactSeam, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("sampling %s: %w", s.Name, err)
	}

	indices := Triangulate(uSegments, vSegments)

	acc, err := accumulateFaceNormals(positions, indices)
	if err != nil {
		return nil, fmt.Errorf("estimating normals for %s: %w", s.Name, err)
	}
	if opts.WeldSeams {
		weldSeamAccumulators(acc, uSegments, vSegments, s.ClosedU, s.ClosedV)
	}
	normals, degenerate := normalizeAll(acc)

	return &Mesh{
		positions:  positions,
		normals:    normals,
		indices:    indices,
		uSegments:  uSegments,
		vSegments:  vSegments,
		closedU:    s.ClosedU,
		closedV:    s.ClosedV,
		bounds:     computeBounds(positions),
		degenerate: degenerate,
	}, nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.positions) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

// Segments returns the lattice resolution the mesh was generated with.
func (m *Mesh) Segments() (uSegments, vSegments int) { return m.uSegments, m.vSegments }

// Closed reports which lattice axes wrap around.
func (m *Mesh) Closed() (u, v bool) { return m.closedU, m.closedV }

// Welded reports whether the mesh came out of Weld and no longer follows the lattice layout.
func (m *Mesh) Welded() bool { return m.welded }

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() Bounds { return m.bounds }

// DegenerateCount returns how many vertices received the zero normal.
func (m *Mesh) DegenerateCount() int { return m.degenerate }

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) r3.Vec { return m.positions[i] }

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) r3.Vec { return m.normals[i] }

// Triangle returns the vertex indices of triangle k.
func (m *Mesh) Triangle(k int) [3]uint32 {
	return [3]uint32{m.indices[3*k], m.indices[3*k+1], m.indices[3*k+2]}
}

// Positions returns a copy of the position buffer.
func (m *Mesh) Positions() []r3.Vec { return append([]r3.Vec(nil), m.positions...) }

// Normals returns a copy of the normal buffer.
func (m *Mesh) Normals() []r3.Vec { return append([]r3.Vec(nil), m.normals...) }

// Indices returns a copy of the index buffer.
func (m *Mesh) Indices() []uint32 { return append([]uint32(nil), m.indices...) }

// Validate checks the buffer invariants and returns ErrBufferMismatch on the first violation.
func (m *Mesh) Validate() error {
	if !m.welded {
		if want := (m.uSegments + 1) * (m.vSegments + 1); len(m.positions) != want {
			return fmt.Errorf("%w: %d positions for a %dx%d lattice, want %d",
				ErrBufferMismatch, len(m.positions), m.uSegments, m.vSegments, want)
		}
		if want := 6 * m.uSegments * m.vSegments; len(m.indices) != want {
			return fmt.Errorf("%w: %d indices for a %dx%d lattice, want %d",
				ErrBufferMismatch, len(m.indices), m.uSegments, m.vSegments, want)
		}
	}
	if len(m.normals) != len(m.positions) {
		return fmt.Errorf("%w: %d normals for %d positions", ErrBufferMismatch, len(m.normals), len(m.positions))
	}
	if err := checkIndices(len(m.positions), m.indices); err != nil {
		return err
	}
	for i, n := range m.normals {
		if n == (r3.Vec{}) {
			continue
		}
		if l := r3.Norm(n); math.Abs(l-1) > 1e-4 {
			return fmt.Errorf("%w: normal %d has length %g", ErrBufferMismatch, i, l)
		}
	}
	return nil
}

// PositionBuffer packs positions as consecutive float32 x, y, z triples.
func (m *Mesh) PositionBuffer() []float32 {
	return packVec3(m.positions)
}

// NormalBuffer packs normals as consecutive float32 x, y, z triples.
func (m *Mesh) NormalBuffer() []float32 {
	return packVec3(m.normals)
}

// IndexBuffer returns the triangle indices, three per triangle.
func (m *Mesh) IndexBuffer() []uint32 {
	return m.Indices()
}

// Interleaved packs position and normal per vertex, InterleavedStride floats each.
func (m *Mesh) Interleaved() []float32 {
	buf := make([]float32, 0, len(m.positions)*InterleavedStride)
	for i, p := range m.positions {
		n := m.normals[i]
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Z),
			float32(n.X), float32(n.Y), float32(n.Z),
		)
	}
	return buf
}

// Vertices returns the interleaved vertices as structs.
func (m *Mesh) Vertices() []Vertex {
	vertices := make([]Vertex, len(m.positions))
	for i, p := range m.positions {
		n := m.normals[i]
		vertices[i] = Vertex{
			Position: [3]float32{float32(p.X), float32(p.Y), float32(p.Z)},
			Normal:   [3]float32{float32(n.X), float32(n.Y), float32(n.Z)},
		}
	}
	return vertices
}

func packVec3(vs []r3.Vec) []float32 {
	buf := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		buf = append(buf, float32(v.X), float32(v.Y), float32(v.Z))
	}
	return buf
}

func computeBounds(positions []r3.Vec) Bounds {
	if len(positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}
