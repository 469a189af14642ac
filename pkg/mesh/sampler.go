package mesh

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// CheckResolution reports ErrInvalidResolution unless both axes have at least one segment.
func CheckResolution(uSegments, vSegments int) error {
	if uSegments < 1 || vSegments < 1 {
		return fmt.Errorf("%w: %dx%d segments, need at least 1x1", ErrInvalidResolution, uSegments, vSegments)
	}
	return nil
}

// Sample evaluates fn at every lattice point, i from 0 to uSegments and j from 0 to
// vSegments, and returns the points in row-major order (index = i + j*(uSegments+1)).
// closedInU marks a surface whose u=1 column coincides with u=0. The seam column is
// still evaluated, so the two copies agree only up to the rounding of fn; Generate
// with BuildOptions.ExactSeam copies column 0 instead.
func Sample(fn SurfaceFunc, uSegments, vSegments int, closedInU bool) ([]r3.Vec, error) {
	return sample(fn, uSegments, vSegments, false, 1)
}

func sample(fn SurfaceFunc, uSegments, vSegments int, copySeam bool, workers int) ([]r3.Vec, error) {
	if err := CheckResolution(uSegments, vSegments); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, errors.New("sample: nil surface function")
	}

	stride := uSegments + 1
	points := make([]r3.Vec, stride*(vSegments+1))

	if workers <= 1 {
		for j := 0; j <= vSegments; j++ {
			row := points[j*stride : (j+1)*stride]
			if err := sampleRow(fn, row, j, uSegments, vSegments, copySeam); err != nil {
				return nil, err
			}
		}
		return points, nil
	}

	// Rows are disjoint sub-slices, so workers never share a write target.
	var g errgroup.Group
	g.SetLimit(workers)
	for j := 0; j <= vSegments; j++ {
		row := points[j*stride : (j+1)*stride]
		g.Go(func() error {
			return sampleRow(fn, row, j, uSegments, vSegments, copySeam)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func sampleRow(fn SurfaceFunc, row []r3.Vec, j, uSegments, vSegments int, copySeam bool) error {
	v := float64(j) / float64(vSegments)

	last := uSegments
	if copySeam {
		last--
	}
	for i := 0; i <= last; i++ {
		p := fn(float64(i)/float64(uSegments), v)
		if !finite(p) {
			return fmt.Errorf("%w at lattice (%d, %d): %v", ErrNonFinite, i, j, p)
		}
		row[i] = p
	}
	if copySeam {
		row[uSegments] = row[0]
	}
	return nil
}

func finite(p r3.Vec) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsNaN(p.Z) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsInf(p.Z, 0)
}
