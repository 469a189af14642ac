package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// WriteOBJ writes m as a Wavefront OBJ object with per-vertex normals.
// Face indices are 1-based and reference the normal with the same index.
func WriteOBJ(w io.Writer, m *mesh.Mesh, name string) error {
	bw := bufio.NewWriter(w)

	u, v := m.Segments()
	fmt.Fprintf(bw, "# meshgen %dx%d lattice, %d vertices, %d triangles\n", u, v, m.VertexCount(), m.TriangleCount())
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	for i := range m.VertexCount() {
		p := m.Position(i)
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for i := range m.VertexCount() {
		n := m.Normal(i)
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	for k := range m.TriangleCount() {
		t := m.Triangle(k)
		a, b, c := t[0]+1, t[1]+1, t[2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	return bw.Flush()
}
