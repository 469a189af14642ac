package meshio

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// Manifest lists the files written by one generation run.
type Manifest struct {
	Meshes []ManifestEntry `yaml:"meshes"`
}

// ManifestEntry describes one written mesh.
type ManifestEntry struct {
	Name       string     `yaml:"name"`
	Surface    string     `yaml:"surface"`
	File       string     `yaml:"file"`
	Format     string     `yaml:"format"`
	USegments  int        `yaml:"u_segments"`
	VSegments  int        `yaml:"v_segments"`
	Vertices   int        `yaml:"vertices"`
	Triangles  int        `yaml:"triangles"`
	Degenerate int        `yaml:"degenerate_normals"`
	Welded     bool       `yaml:"welded"`
	BoundsMin  [3]float64 `yaml:"bounds_min,flow"`
	BoundsMax  [3]float64 `yaml:"bounds_max,flow"`
}

// NewManifestEntry fills the mesh statistics of an entry.
func NewManifestEntry(name, surface, file string, f Format, m *mesh.Mesh) ManifestEntry {
	u, v := m.Segments()
	b := m.Bounds()
	return ManifestEntry{
		Name:       name,
		Surface:    surface,
		File:       file,
		Format:     f.String(),
		USegments:  u,
		VSegments:  v,
		Vertices:   m.VertexCount(),
		Triangles:  m.TriangleCount(),
		Degenerate: m.DegenerateCount(),
		Welded:     m.Welded(),
		BoundsMin:  [3]float64{b.Min.X, b.Min.Y, b.Min.Z},
		BoundsMax:  [3]float64{b.Max.X, b.Max.Y, b.Max.Z},
	}
}

// WriteManifest encodes the manifest as YAML.
func WriteManifest(w io.Writer, man Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(man); err != nil {
		return err
	}
	return enc.Close()
}

// ReadManifest decodes a manifest written by WriteManifest.
func ReadManifest(r io.Reader) (Manifest, error) {
	var man Manifest
	err := yaml.NewDecoder(r).Decode(&man)
	return man, err
}
