package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere returns a UV sphere centered at the origin with the poles on the Y axis.
// v runs from the north pole (v=0) to the south pole (v=1), u around the azimuth.
// With the fixed triangulation diagonal the faces wind so their normals point inward;
// wrap it in MirrorU for outward-facing normals.
func Sphere(radius float64) SurfaceFunc {
	return func(u, v float64) r3.Vec {
		theta := v * math.Pi
		phi := u * 2 * math.Pi
		sinTheta, cosTheta := math.Sincos(theta)
		sinPhi, cosPhi := math.Sincos(phi)
		return r3.Vec{
			X: radius * sinTheta * cosPhi,
			Y: radius * cosTheta,
			Z: radius * sinTheta * sinPhi,
		}
	}
}

// HeightField maps u, v linearly onto a width x height rectangle centered at the origin
// of the XY plane and lifts each point to z = h(x, y).
func HeightField(width, height float64, h HeightFunc) SurfaceFunc {
	return func(u, v float64) r3.Vec {
		x := (u - 0.5) * width
		y := (v - 0.5) * height
		return r3.Vec{X: x, Y: y, Z: h(x, y)}
	}
}

// Flat is the zero height function.
func Flat(x, y float64) float64 {
	return 0
}

// Wave returns sin(frequency*x) * cos(frequency*y) * amplitude.
func Wave(amplitude, frequency float64) HeightFunc {
	return func(x, y float64) float64 {
		return math.Sin(frequency*x) * math.Cos(frequency*y) * amplitude
	}
}

// Torus returns a torus around the Y axis. u travels along the ring, v around the tube.
func Torus(majorRadius, minorRadius float64) SurfaceFunc {
	return func(u, v float64) r3.Vec {
		sinPhi, cosPhi := math.Sincos(u * 2 * math.Pi)
		sinTheta, cosTheta := math.Sincos(v * 2 * math.Pi)
		ring := majorRadius + minorRadius*cosTheta
		return r3.Vec{
			X: ring * cosPhi,
			Y: minorRadius * sinTheta,
			Z: ring * sinPhi,
		}
	}
}

// Cylinder returns the side of a (possibly tapered) cylinder along the Y axis,
// from the top rim at v=0 to the bottom rim at v=1. A zero top radius gives a cone.
func Cylinder(radiusTop, radiusBottom, height float64) SurfaceFunc {
	return func(u, v float64) r3.Vec {
		sinPhi, cosPhi := math.Sincos(u * 2 * math.Pi)
		r := radiusTop + (radiusBottom-radiusTop)*v
		return r3.Vec{
			X: r * cosPhi,
			Y: (0.5 - v) * height,
			Z: r * sinPhi,
		}
	}
}

// Ring returns a flat annulus in the XY plane between the inner and outer radius.
func Ring(innerRadius, outerRadius float64) SurfaceFunc {
	return func(u, v float64) r3.Vec {
		sinPhi, cosPhi := math.Sincos(u * 2 * math.Pi)
		r := innerRadius + (outerRadius-innerRadius)*v
		return r3.Vec{X: r * cosPhi, Y: r * sinPhi, Z: 0}
	}
}

// MirrorU evaluates fn with u reversed. This flips the handedness of the surface and
// therefore the winding and normal direction of the generated mesh.
func MirrorU(fn SurfaceFunc) SurfaceFunc {
	return func(u, v float64) r3.Vec {
		return fn(1-u, v)
	}
}

// NewSphere describes a sphere surface.
func NewSphere(radius float64) Surface {
	return Surface{Name: "sphere", Func: Sphere(radius), ClosedU: true}
}

// NewHeightField describes an open height-field surface.
func NewHeightField(width, height float64, h HeightFunc) Surface {
	return Surface{Name: "heightfield", Func: HeightField(width, height, h)}
}

// NewPlane describes a flat width x height plane.
func NewPlane(width, height float64) Surface {
	return Surface{Name: "plane", Func: HeightField(width, height, Flat)}
}

// NewTorus describes a torus surface.
func NewTorus(majorRadius, minorRadius float64) Surface {
	return Surface{Name: "torus", Func: Torus(majorRadius, minorRadius), ClosedU: true, ClosedV: true}
}

// NewCylinder describes the side of a cylinder or cone.
func NewCylinder(radiusTop, radiusBottom, height float64) Surface {
	return Surface{Name: "cylinder", Func: Cylinder(radiusTop, radiusBottom, height), ClosedU: true}
}

// NewRing describes a flat annulus.
func NewRing(innerRadius, outerRadius float64) Surface {
	return Surface{Name: "ring", Func: Ring(innerRadius, outerRadius), ClosedU: true}
}
