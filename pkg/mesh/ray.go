package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ray is a half-line starting at Origin. Dir need not be normalized; hit
// distances are measured in multiples of Dir.
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}

// Hit is the nearest intersection of a ray with a mesh.
type Hit struct {
	Triangle int     // triangle index, see Mesh.Triangle
	T        float64 // ray parameter of the hit point
	Point    r3.Vec
	B1, B2   float64 // barycentric weights of the second and third corner
}

// IntersectRay tests the ray against the box with the slab method. It returns the
// entry parameter, or the exit parameter when the origin is inside the box.
func (b Bounds) IntersectRay(r Ray) (t float64, ok bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := range 3 {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Raycast returns the nearest triangle hit by r in front of its origin. Triangles are
// hit from either side. Degenerate triangles are never hit.
func (m *Mesh) Raycast(r Ray) (Hit, bool) {
	if _, ok := m.bounds.IntersectRay(r); !ok {
		return Hit{}, false
	}

	best := Hit{T: math.Inf(1)}
	found := false
	for k := range m.TriangleCount() {
		tri := m.Triangle(k)
		t, b1, b2, ok := intersectTriangle(r, m.positions[tri[0]], m.positions[tri[1]], m.positions[tri[2]])
		if !ok || t >= best.T {
			continue
		}
		best = Hit{Triangle: k, T: t, B1: b1, B2: b2}
		found = true
	}
	if !found {
		return Hit{}, false
	}
	best.Point = r.At(best.T)
	return best, true
}

// intersectTriangle is the Moller-Trumbore ray/triangle test.
func intersectTriangle(r Ray, a, b, c r3.Vec) (t, b1, b2 float64, ok bool) {
	const eps = 1e-12

	e1 := r3.Sub(b, a)
	e2 := r3.Sub(c, a)
	p := r3.Cross(r.Dir, e2)
	det := r3.Dot(e1, p)
	if math.Abs(det) < eps {
		return 0, 0, 0, false
	}
	inv := 1 / det

	s := r3.Sub(r.Origin, a)
	b1 = r3.Dot(s, p) * inv
	if b1 < 0 || b1 > 1 {
		return 0, 0, 0, false
	}
	q := r3.Cross(s, e1)
	b2 = r3.Dot(r.Dir, q) * inv
	if b2 < 0 || b1+b2 > 1 {
		return 0, 0, 0, false
	}
	t = r3.Dot(e2, q) * inv
	if t < 0 {
		return 0, 0, 0, false
	}
	return t, b1, b2, true
}
