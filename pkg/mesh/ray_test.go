package mesh

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBoundsIntersectRay(t *testing.T) {
	box := Bounds{Min: r3.Vec{X: -1, Y: -1, Z: -1}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}

	tests := []struct {
		name  string
		ray   Ray
		wantT float64
		hit   bool
	}{
		{"front", Ray{Origin: r3.Vec{Z: -5}, Dir: r3.Vec{Z: 1}}, 4, true},
		{"inside", Ray{Origin: r3.Vec{}, Dir: r3.Vec{X: 1}}, 1, true},
		{"behind", Ray{Origin: r3.Vec{Z: 5}, Dir: r3.Vec{Z: 1}}, 0, false},
		{"miss", Ray{Origin: r3.Vec{X: 3, Z: -5}, Dir: r3.Vec{Z: 1}}, 0, false},
		{"parallel outside", Ray{Origin: r3.Vec{Y: 2}, Dir: r3.Vec{X: 1}}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := box.IntersectRay(tt.ray)
			if ok != tt.hit {
				t.Fatalf("IntersectRay() ok = %v, want %v", ok, tt.hit)
			}
			if ok && math.Abs(got-tt.wantT) > 1e-12 {
				t.Errorf("IntersectRay() t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestRaycastPlane(t *testing.T) {
	m := mustGenerate(t, NewPlane(2, 2), 4, 4, BuildOptions{})

	// Bounds of a flat plane have zero depth; the slab test must still accept it.
	hit, ok := m.Raycast(Ray{Origin: r3.Vec{X: 0.3, Y: -0.2, Z: 5}, Dir: r3.Vec{Z: -1}})
	if !ok {
		t.Fatal("Raycast() missed the plane")
	}
	if math.Abs(hit.T-5) > 1e-12 {
		t.Errorf("hit.T = %v, want 5", hit.T)
	}
	want := r3.Vec{X: 0.3, Y: -0.2}
	if !vecNear(hit.Point, want, 1e-12) {
		t.Errorf("hit.Point = %v, want %v", hit.Point, want)
	}
	if hit.Triangle < 0 || hit.Triangle >= m.TriangleCount() {
		t.Errorf("hit.Triangle = %d out of range", hit.Triangle)
	}

	if _, ok := m.Raycast(Ray{Origin: r3.Vec{X: 3, Z: 5}, Dir: r3.Vec{Z: -1}}); ok {
		t.Error("Raycast() hit outside the plane")
	}
}

func TestRaycastSphereNearest(t *testing.T) {
	m := mustGenerate(t, NewSphere(1), 32, 32, BuildOptions{})

	hit, ok := m.Raycast(Ray{Origin: r3.Vec{X: -5, Y: 0.1, Z: 0.05}, Dir: r3.Vec{X: 1}})
	if !ok {
		t.Fatal("Raycast() missed the sphere")
	}
	// The tessellated surface lies just inside the unit sphere, so the near side is
	// hit at x slightly greater than -1.
	if hit.Point.X > -0.98 || hit.Point.X < -1 {
		t.Errorf("hit.Point.X = %v, want near -1", hit.Point.X)
	}

	tri := m.Triangle(hit.Triangle)
	a, b, c := m.Position(int(tri[0])), m.Position(int(tri[1])), m.Position(int(tri[2]))
	p := r3.Add(r3.Add(r3.Scale(1-hit.B1-hit.B2, a), r3.Scale(hit.B1, b)), r3.Scale(hit.B2, c))
	if !vecNear(p, hit.Point, 1e-9) {
		t.Errorf("barycentric point %v does not match hit point %v", p, hit.Point)
	}
}
