package mesh

import "errors"

var (
	// ErrInvalidResolution is returned when a lattice has fewer than one segment on an axis.
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrBufferMismatch is returned when index, position and normal buffers disagree.
	ErrBufferMismatch = errors.New("buffer mismatch")

	// ErrNonFinite is returned when a surface function yields NaN or Inf.
	ErrNonFinite = errors.New("non-finite sample")
)
