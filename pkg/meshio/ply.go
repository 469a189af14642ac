package meshio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// PLYEncoding selects the body encoding of a PLY file.
type PLYEncoding string

// PLY body encodings.
const (
	PLYASCII              PLYEncoding = "ascii"
	PLYBinaryLittleEndian PLYEncoding = "binary_little_endian"
)

// WritePLY writes m as a PLY file with float x, y, z, nx, ny, nz vertices and
// triangle faces stored as "list uchar uint vertex_indices".
func WritePLY(w io.Writer, m *mesh.Mesh, enc PLYEncoding, name string) error {
	if enc != PLYASCII && enc != PLYBinaryLittleEndian {
		return fmt.Errorf("%w: ply encoding %q", ErrUnknownFormat, enc)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "ply")
	fmt.Fprintf(bw, "format %s 1.0\n", enc)
	if name != "" {
		fmt.Fprintf(bw, "comment %s\n", name)
	}
	fmt.Fprintf(bw, "element vertex %d\n", m.VertexCount())
	for _, prop := range []string{"x", "y", "z", "nx", "ny", "nz"} {
		fmt.Fprintf(bw, "property float %s\n", prop)
	}
	fmt.Fprintf(bw, "element face %d\n", m.TriangleCount())
	fmt.Fprintln(bw, "property list uchar uint vertex_indices")
	fmt.Fprintln(bw, "end_header")

	var err error
	if enc == PLYASCII {
		err = writePLYASCII(bw, m)
	} else {
		err = writePLYBinary(bw, m)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func writePLYASCII(w *bufio.Writer, m *mesh.Mesh) error {
	for _, vtx := range m.Vertices() {
		p, n := vtx.Position, vtx.Normal
		if _, err := fmt.Fprintf(w, "%g %g %g %g %g %g\n", p[0], p[1], p[2], n[0], n[1], n[2]); err != nil {
			return err
		}
	}
	for k := range m.TriangleCount() {
		t := m.Triangle(k)
		if _, err := fmt.Fprintf(w, "3 %d %d %d\n", t[0], t[1], t[2]); err != nil {
			return err
		}
	}
	return nil
}

func writePLYBinary(w *bufio.Writer, m *mesh.Mesh) error {
	var buf [4]byte
	putFloat := func(f float32) error {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		_, err := w.Write(buf[:])
		return err
	}

	for _, f := range m.Interleaved() {
		if err := putFloat(f); err != nil {
			return err
		}
	}
	for k := range m.TriangleCount() {
		if err := w.WriteByte(3); err != nil {
			return err
		}
		for _, idx := range m.Triangle(k) {
			binary.LittleEndian.PutUint32(buf[:], idx)
			if _, err := w.Write(buf[:]); err != nil {
				return err
			}
		}
	}
	return nil
}
