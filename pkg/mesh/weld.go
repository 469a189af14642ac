package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultWeldTolerance is the grid size used by Weld when none is given.
const DefaultWeldTolerance = 1e-6

// Weld returns a new mesh in which positions that fall into the same tolerance-sized
// grid cell share one vertex. Triangles that collapse onto fewer than three distinct
// vertices are dropped and normals are estimated again. m itself is not changed.
//
// Welding a sphere merges each pole into a single vertex and closes the seam.
func Weld(m *Mesh, tolerance float64) (*Mesh, error) {
	if tolerance <= 0 {
		tolerance = DefaultWeldTolerance
	}

	// Group vertices by quantized position
	remap := make([]uint32, len(m.positions))
	cells := make(map[[3]int64]uint32, len(m.positions))
	var positions []r3.Vec
	for i, p := range m.positions {
		key := [3]int64{
			int64(math.Round(p.X / tolerance)),
			int64(math.Round(p.Y / tolerance)),
			int64(math.Round(p.Z / tolerance)),
		}
		idx, ok := cells[key]
		if !ok {
			idx = uint32(len(positions))
			cells[key] = idx
			positions = append(positions, p)
		}
		remap[i] = idx
	}

	indices := make([]uint32, 0, len(m.indices))
	for t := 0; t < len(m.indices); t += 3 {
		a, b, c := remap[m.indices[t]], remap[m.indices[t+1]], remap[m.indices[t+2]]
		if a == b || b == c || a == c {
			continue
		}
		indices = append(indices, a, b, c)
	}

	acc, err := accumulateFaceNormals(positions, indices)
	if err != nil {
		return nil, err
	}
	normals, degenerate := normalizeAll(acc)

	return &Mesh{
		positions:  positions,
		normals:    normals,
		indices:    indices,
		uSegments:  m.uSegments,
		vSegments:  m.vSegments,
		closedU:    m.closedU,
		closedV:    m.closedV,
		welded:     true,
		bounds:     computeBounds(positions),
		degenerate: degenerate,
	}, nil
}
