// Package meshio writes generated meshes to interchange files.
package meshio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// ErrUnknownFormat is returned for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown mesh format")

// Format identifies an output file format.
type Format int

// Supported formats.
const (
	FormatOBJ Format = iota
	FormatPLYASCII
	FormatPLYBinary
)

// String returns the name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatOBJ:
		return "obj"
	case FormatPLYASCII:
		return "ply"
	case FormatPLYBinary:
		return "ply-binary"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	if f == FormatOBJ {
		return ".obj"
	}
	return ".ply"
}

// ParseFormat maps a format name to a Format. Matching ignores case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "obj", "wavefront":
		return FormatOBJ, nil
	case "ply", "ply-ascii":
		return FormatPLYASCII, nil
	case "ply-binary", "ply-bin":
		return FormatPLYBinary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write encodes m in the given format. The name is stored where the format has room for it.
func Write(w io.Writer, m *mesh.Mesh, f Format, name string) error {
	switch f {
	case FormatOBJ:
		return WriteOBJ(w, m, name)
	case FormatPLYASCII:
		return WritePLY(w, m, PLYASCII, name)
	case FormatPLYBinary:
		return WritePLY(w, m, PLYBinaryLittleEndian, name)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
