package mesh

import (
	"slices"
	"testing"
)

func TestTriangulateSingleCell(t *testing.T) {
	got := Triangulate(1, 1)
	want := []uint32{0, 2, 1, 2, 3, 1}
	if !slices.Equal(got, want) {
		t.Errorf("Triangulate(1, 1) = %v, want %v", got, want)
	}
}

func TestTriangulateDiagonal(t *testing.T) {
	// 2x1 lattice: rows of three vertices.
	//  3 4 5
	//  0 1 2
	got := Triangulate(2, 1)
	want := []uint32{
		0, 3, 1, 3, 4, 1,
		1, 4, 2, 4, 5, 2,
	}
	if !slices.Equal(got, want) {
		t.Errorf("Triangulate(2, 1) = %v, want %v", got, want)
	}
}

func TestTriangulateCounts(t *testing.T) {
	tests := []struct {
		u, v int
	}{
		{1, 1}, {2, 2}, {3, 7}, {8, 8}, {50, 50}, {1, 64},
	}

	for _, tt := range tests {
		indices := Triangulate(tt.u, tt.v)
		if len(indices) != 6*tt.u*tt.v {
			t.Errorf("Triangulate(%d, %d) len = %d, want %d", tt.u, tt.v, len(indices), 6*tt.u*tt.v)
		}
		vertexCount := uint32((tt.u + 1) * (tt.v + 1))
		for k, idx := range indices {
			if idx >= vertexCount {
				t.Fatalf("Triangulate(%d, %d)[%d] = %d, out of range %d", tt.u, tt.v, k, idx, vertexCount)
			}
		}
	}
}

func TestTriangulateInvalid(t *testing.T) {
	for _, res := range [][2]int{{0, 1}, {1, 0}, {-1, 4}, {0, 0}} {
		if got := Triangulate(res[0], res[1]); got != nil {
			t.Errorf("Triangulate(%d, %d) = %v, want nil", res[0], res[1], got)
		}
	}
}

func TestVertexIndex(t *testing.T) {
	if got := VertexIndex(3, 2, 8); got != 21 {
		t.Errorf("VertexIndex(3, 2, 8) = %d, want 21", got)
	}
}
