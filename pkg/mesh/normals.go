package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DegenerateEpsilon is the accumulator magnitude at or below which a vertex normal
// is reported as the zero vector instead of being normalized.
const DegenerateEpsilon = 1e-12

// EstimateNormals returns one normal per position. Every triangle adds its raw
// (unnormalized) edge cross product to its three vertices, so larger faces weigh more;
// the sums are normalized afterwards. Vertices whose sum vanishes, including vertices
// no triangle references, get the zero vector.
func EstimateNormals(positions []r3.Vec, indices []uint32) ([]r3.Vec, error) {
	acc, err := accumulateFaceNormals(positions, indices)
	if err != nil {
		return nil, err
	}
	normals, _ := normalizeAll(acc)
	return normals, nil
}

// FaceNormal returns the unnormalized normal (b-a) x (c-a) of triangle abc.
// Its length is twice the triangle's area.
func FaceNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}

func accumulateFaceNormals(positions []r3.Vec, indices []uint32) ([]r3.Vec, error) {
	if err := checkIndices(len(positions), indices); err != nil {
		return nil, err
	}

	acc := make([]r3.Vec, len(positions))
	for t := 0; t < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		n := FaceNormal(positions[a], positions[b], positions[c])
		acc[a] = r3.Add(acc[a], n)
		acc[b] = r3.Add(acc[b], n)
		acc[c] = r3.Add(acc[c], n)
	}
	return acc, nil
}

// weldSeamAccumulators sums the accumulators of the duplicated seam vertices of
// closed axes and stores the sum on both copies.
func weldSeamAccumulators(acc []r3.Vec, uSegments, vSegments int, closedU, closedV bool) {
	if closedU {
		for j := 0; j <= vSegments; j++ {
			first := VertexIndex(0, j, uSegments)
			last := VertexIndex(uSegments, j, uSegments)
			sum := r3.Add(acc[first], acc[last])
			acc[first], acc[last] = sum, sum
		}
	}
	if closedV {
		for i := 0; i <= uSegments; i++ {
			first := VertexIndex(i, 0, uSegments)
			last := VertexIndex(i, vSegments, uSegments)
			sum := r3.Add(acc[first], acc[last])
			acc[first], acc[last] = sum, sum
		}
	}
}

// normalizeAll turns accumulators into unit normals and counts the ones left at zero.
func normalizeAll(acc []r3.Vec) ([]r3.Vec, int) {
	normals := make([]r3.Vec, len(acc))
	degenerate := 0
	for i, sum := range acc {
		length := r3.Norm(sum)
		if length <= DegenerateEpsilon || math.IsNaN(length) || math.IsInf(length, 0) {
			degenerate++
			continue
		}
		normals[i] = r3.Scale(1/length, sum)
	}
	return normals, degenerate
}

func checkIndices(vertexCount int, indices []uint32) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrBufferMismatch, len(indices))
	}
	for k, idx := range indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("%w: index %d at %d out of range [0, %d)", ErrBufferMismatch, idx, k, vertexCount)
		}
	}
	return nil
}
