// Package config handles generator configuration loading and management.
package config

import "github.com/Faultbox/meshgen/pkg/heightfield"

// Surface kinds understood by the generator.
const (
	SurfaceSphere   = "sphere"
	SurfacePlane    = "plane"
	SurfaceWave     = "wave"
	SurfaceNoise    = "noise"
	SurfaceImage    = "image"
	SurfaceTorus    = "torus"
	SurfaceCylinder = "cylinder"
	SurfaceCone     = "cone"
	SurfaceRing     = "ring"
)

// Config holds all generator settings.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Generation GenerationConfig `yaml:"generation"`
	Meshes     []MeshConfig     `yaml:"meshes"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// OutputConfig holds where and how meshes are written.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Format   string `yaml:"format"`   // obj, ply, ply-binary
	Manifest bool   `yaml:"manifest"` // write manifest.yaml next to the meshes
}

// GenerationConfig holds settings shared by every mesh.
type GenerationConfig struct {
	Workers   int  `yaml:"workers"`    // concurrent meshes and rows per mesh
	WeldSeams bool `yaml:"weld_seams"` // share normals across closed seams
	ExactSeam bool `yaml:"exact_seam"` // copy the u=0 column onto u=1 on closed surfaces
}

// MeshConfig describes a single mesh to generate. Only the parameters relevant
// to Surface are read.
type MeshConfig struct {
	Name      string `yaml:"name"`
	Surface   string `yaml:"surface"`
	USegments int    `yaml:"u_segments"`
	VSegments int    `yaml:"v_segments"`

	// sphere, cylinder, cone
	Radius       float64 `yaml:"radius,omitempty"`
	RadiusTop    float64 `yaml:"radius_top,omitempty"`
	RadiusBottom float64 `yaml:"radius_bottom,omitempty"`

	// torus
	MajorRadius float64 `yaml:"major_radius,omitempty"`
	MinorRadius float64 `yaml:"minor_radius,omitempty"`

	// ring
	InnerRadius float64 `yaml:"inner_radius,omitempty"`
	OuterRadius float64 `yaml:"outer_radius,omitempty"`

	// plane, wave, noise, image extent; height doubles as cylinder height
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// wave
	Amplitude float64 `yaml:"amplitude,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"`

	Noise *heightfield.Noise `yaml:"noise,omitempty"`

	// image
	Image      string  `yaml:"image,omitempty"`
	ImageScale float64 `yaml:"image_scale,omitempty"`

	MirrorU bool   `yaml:"mirror_u,omitempty"` // flip winding
	Weld    bool   `yaml:"weld,omitempty"`     // merge coincident vertices after generation
	Format  string `yaml:"format,omitempty"`   // overrides output.format
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config that generates the two reference meshes.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:      "meshes",
			Format:   "obj",
			Manifest: true,
		},
		Generation: GenerationConfig{
			Workers:   4,
			WeldSeams: false,
		},
		Meshes: []MeshConfig{
			{
				Name:      "sphere",
				Surface:   SurfaceSphere,
				USegments: 32,
				VSegments: 32,
				Radius:    1,
			},
			{
				Name:      "wave",
				Surface:   SurfaceWave,
				USegments: 50,
				VSegments: 50,
				Width:     3,
				Height:    3,
				Amplitude: 0.3,
				Frequency: 2,
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
