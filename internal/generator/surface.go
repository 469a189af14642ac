package generator

import (
	"fmt"

	"github.com/Faultbox/meshgen/internal/assets"
	"github.com/Faultbox/meshgen/internal/config"
	"github.com/Faultbox/meshgen/pkg/heightfield"
	"github.com/Faultbox/meshgen/pkg/mesh"
)

// DefaultWaveFrequency is used when a wave entry leaves frequency unset.
const DefaultWaveFrequency = 2.0

// BuildSurface turns a config entry into a surface description. Image entries
// load their height map through maps, which may be nil for the other kinds.
func BuildSurface(mc config.MeshConfig, maps *assets.Manager) (mesh.Surface, error) {
	var s mesh.Surface

	switch mc.Surface {
	case config.SurfaceSphere:
		s = mesh.NewSphere(mc.Radius)
	case config.SurfacePlane:
		s = mesh.NewPlane(mc.Width, mc.Height)
	case config.SurfaceWave:
		freq := mc.Frequency
		if freq == 0 {
			freq = DefaultWaveFrequency
		}
		s = mesh.NewHeightField(mc.Width, mc.Height, mesh.Wave(mc.Amplitude, freq))
		s.Name = config.SurfaceWave
	case config.SurfaceNoise:
		n := heightfield.DefaultNoise()
		if mc.Noise != nil {
			n = *mc.Noise
		}
		s = mesh.NewHeightField(mc.Width, mc.Height, n.Field().Height)
		s.Name = config.SurfaceNoise
	case config.SurfaceImage:
		if maps == nil {
			maps = assets.NewManager()
		}
		scale := mc.ImageScale
		if scale == 0 {
			scale = 1
		}
		img, err := maps.HeightMap(mc.Image, mc.Width, mc.Height, scale)
		if err != nil {
			return mesh.Surface{}, err
		}
		s = mesh.NewHeightField(mc.Width, mc.Height, img.Height)
		s.Name = config.SurfaceImage
	case config.SurfaceTorus:
		s = mesh.NewTorus(mc.MajorRadius, mc.MinorRadius)
	case config.SurfaceCylinder:
		top, bottom := mc.RadiusTop, mc.RadiusBottom
		if top == 0 && bottom == 0 {
			top, bottom = mc.Radius, mc.Radius
		}
		s = mesh.NewCylinder(top, bottom, mc.Height)
	case config.SurfaceCone:
		bottom := mc.RadiusBottom
		if bottom == 0 {
			bottom = mc.Radius
		}
		s = mesh.NewCylinder(0, bottom, mc.Height)
		s.Name = config.SurfaceCone
	case config.SurfaceRing:
		s = mesh.NewRing(mc.InnerRadius, mc.OuterRadius)
	default:
		return mesh.Surface{}, fmt.Errorf("unknown surface %q", mc.Surface)
	}

	if mc.MirrorU {
		s.Func = mesh.MirrorU(s.Func)
	}
	return s, nil
}
