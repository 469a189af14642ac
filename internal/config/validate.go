package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshgen/pkg/meshio"
)

// ErrInvalidConfig is returned by Validate for any rejected setting.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the config for settings the generator cannot honour.
func (c *Config) Validate() error {
	if _, err := meshio.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format: %v", ErrInvalidConfig, err)
	}
	if c.Generation.Workers < 0 {
		return fmt.Errorf("%w: generation.workers must not be negative", ErrInvalidConfig)
	}
	if len(c.Meshes) == 0 {
		return fmt.Errorf("%w: no meshes configured", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Meshes))
	for i, m := range c.Meshes {
		if m.Name == "" {
			return fmt.Errorf("%w: meshes[%d]: missing name", ErrInvalidConfig, i)
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: meshes[%d]: duplicate name %q", ErrInvalidConfig, i, m.Name)
		}
		seen[m.Name] = true
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: mesh %q: %v", ErrInvalidConfig, m.Name, err)
		}
	}
	return nil
}

// Validate checks a single mesh entry.
func (m *MeshConfig) Validate() error {
	if m.USegments < 1 || m.VSegments < 1 {
		return fmt.Errorf("segments must be at least 1, got %dx%d", m.USegments, m.VSegments)
	}
	if m.Format != "" {
		if _, err := meshio.ParseFormat(m.Format); err != nil {
			return err
		}
	}

	switch m.Surface {
	case SurfaceSphere:
		if m.Radius <= 0 {
			return errors.New("sphere radius must be positive")
		}
	case SurfacePlane, SurfaceWave, SurfaceNoise:
		if m.Width <= 0 || m.Height <= 0 {
			return errors.New("width and height must be positive")
		}
	case SurfaceImage:
		if m.Image == "" {
			return errors.New("image surface needs an image path")
		}
		if m.Width <= 0 || m.Height <= 0 {
			return errors.New("width and height must be positive")
		}
	case SurfaceTorus:
		if m.MajorRadius <= 0 || m.MinorRadius <= 0 {
			return errors.New("torus radii must be positive")
		}
	case SurfaceCylinder:
		if m.Height <= 0 {
			return errors.New("height must be positive")
		}
		if m.RadiusTop <= 0 && m.RadiusBottom <= 0 && m.Radius <= 0 {
			return errors.New("radius must be positive")
		}
	case SurfaceCone:
		if m.Height <= 0 {
			return errors.New("height must be positive")
		}
		if m.RadiusBottom <= 0 && m.Radius <= 0 {
			return errors.New("cone base radius must be positive")
		}
	case SurfaceRing:
		if m.InnerRadius < 0 || m.OuterRadius <= m.InnerRadius {
			return errors.New("ring needs 0 <= inner_radius < outer_radius")
		}
	default:
		return fmt.Errorf("unknown surface %q", m.Surface)
	}
	return nil
}

// OutputFormat returns the format for this mesh, falling back to the given default.
func (m *MeshConfig) OutputFormat(fallback string) string {
	if m.Format != "" {
		return m.Format
	}
	return fallback
}
