package geometry

import "errors"

var (
	// ErrNonFinite is returned when a length or coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("geometry: non-finite value")

	// ErrDegenerateGrid is returned for a grid whose cell width or height
	// is zero or negative.
	ErrDegenerateGrid = errors.New("geometry: degenerate grid")

	// ErrDegenerateScale is returned by InScale when the divisor is zero.
	ErrDegenerateScale = errors.New("geometry: degenerate scale")

	// ErrEmptyPolygon is returned when a polygon is built without vertices.
	ErrEmptyPolygon = errors.New("geometry: empty polygon")
)
