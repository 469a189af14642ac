package mesh

// Triangulate returns the index buffer connecting a (uSegments+1) x (vSegments+1)
// row-major lattice. Each cell with corner a = i + j*(uSegments+1) and b = a+uSegments+1
// becomes the triangles (a, b, a+1) and (b, b+1, a+1).
// It returns nil when either segment count is below one.
func Triangulate(uSegments, vSegments int) []uint32 {
	if uSegments < 1 || vSegments < 1 {
		return nil
	}

	stride := uint32(uSegments + 1)
	indices := make([]uint32, 0, 6*uSegments*vSegments)
	for j := range vSegments {
		for i := range uSegments {
			a := uint32(i) + uint32(j)*stride
			b := a + stride
			indices = append(indices,
				a, b, a+1,
				b, b+1, a+1,
			)
		}
	}
	return indices
}

// VertexIndex returns the vertex buffer index of lattice point (i, j).
func VertexIndex(i, j, uSegments int) int {
	return i + j*(uSegments+1)
}
