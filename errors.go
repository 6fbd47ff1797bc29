package seamster

import "errors"

// Sentinel errors returned by the carving operations. They usually come back
// wrapped with positional context, so callers should test for them with
// errors.Is rather than by equality.
var (
	// ErrOutOfRange reports a coordinate, node id or seam entry outside the
	// current grid.
	ErrOutOfRange = errors.New("seamster: coordinate out of range")

	// ErrInvalidSeam reports a seam that does not describe one removable pixel
	// per row (or column): wrong length, or a step between neighboring entries
	// larger than one.
	ErrInvalidSeam = errors.New("seamster: non-valid seam")

	// ErrDegenerateGrid reports an operation on a grid with no extent left in
	// a dimension it depends on: seam tracing on a grid with a zero dimension,
	// or removing a seam that has no rows (columns) left to span.
	ErrDegenerateGrid = errors.New("seamster: grid dimension is zero")
)
