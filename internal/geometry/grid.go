package geometry

import (
	"fmt"
	"math"
)

// Cell is the pixel size of one Cartesian unit.
type Cell struct {
	Width, Height Pixel
}

// Grid is the affine mapping from Cartesian space to pixel space:
//
//	pixelX = originX + x*cellWidth
//	pixelY = originY - y*cellHeight
//
// A Grid is a value and is never mutated; a zoom or resize builds a new one.
type Grid struct {
	cell   Cell
	origin PixelCoordinate
}

// NewGrid returns a Grid, rejecting cells that are zero or negative in
// either dimension with ErrDegenerateGrid.
func NewGrid(cell Cell, origin PixelCoordinate) (Grid, error) {
	if cell.Width.value <= 0 || cell.Height.value <= 0 {
		return Grid{}, fmt.Errorf("%w: cell %v x %v", ErrDegenerateGrid, cell.Width, cell.Height)
	}
	return Grid{cell: cell, origin: origin}, nil
}

// GridFor is NewGrid taking raw values.
func GridFor(cellWidth, cellHeight, originX, originY float64) (Grid, error) {
	w, err := NewPixel(cellWidth)
	if err != nil {
		return Grid{}, err
	}
	h, err := NewPixel(cellHeight)
	if err != nil {
		return Grid{}, err
	}
	o, err := NewPixelCoordinate(originX, originY)
	if err != nil {
		return Grid{}, err
	}
	return NewGrid(Cell{Width: w, Height: h}, o)
}

func (g Grid) Cell() Cell { return g.cell }

// Origin is the pixel coordinate of the Cartesian origin.
func (g Grid) Origin() PixelCoordinate { return g.origin }

// ToPixel projects a Cartesian point. The origin maps exactly to Origin().
// A point that is not finite, or that lands outside float64 range, is
// rejected with ErrNonFinite.
func (g Grid) ToPixel(c Cartesian) (PixelCoordinate, error) {
	return NewPixelCoordinate(
		g.origin.X.value+c.X*g.cell.Width.value,
		g.origin.Y.value-c.Y*g.cell.Height.value,
	)
}

// ToCartesian is the inverse of ToPixel, up to rounding.
func (g Grid) ToCartesian(p PixelCoordinate) Cartesian {
	return Cartesian{
		X: (p.X.value - g.origin.X.value) / g.cell.Width.value,
		Y: (g.origin.Y.value - p.Y.value) / g.cell.Height.value,
	}
}

// ToPixels projects every vertex of p, preserving order and count.
func (g Grid) ToPixels(p Polygon) (PixelPolygon, error) {
	points := make([]PixelCoordinate, len(p.points))
	for i, c := range p.points {
		px, err := g.ToPixel(c)
		if err != nil {
			return PixelPolygon{}, fmt.Errorf("vertex %d: %w", i, err)
		}
		points[i] = px
	}
	return PixelPolygon{points: points}, nil
}

// ToPixelSegment projects both ends of s.
func (g Grid) ToPixelSegment(s Segment) (PixelSegment, error) {
	from, err := g.ToPixel(s.From)
	if err != nil {
		return PixelSegment{}, err
	}
	to, err := g.ToPixel(s.To)
	if err != nil {
		return PixelSegment{}, err
	}
	return PixelSegment{From: from, To: to}, nil
}

// Scaled returns a grid with both cell dimensions multiplied by k around
// the same origin. k must be finite and positive.
func (g Grid) Scaled(k float64) (Grid, error) {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		return Grid{}, fmt.Errorf("%w: scale factor %v", ErrDegenerateGrid, k)
	}
	w, err := g.cell.Width.Scale(k)
	if err != nil {
		return Grid{}, fmt.Errorf("%w: %w", ErrDegenerateGrid, err)
	}
	h, err := g.cell.Height.Scale(k)
	if err != nil {
		return Grid{}, fmt.Errorf("%w: %w", ErrDegenerateGrid, err)
	}
	return NewGrid(Cell{Width: w, Height: h}, g.origin)
}

// PixelLength converts a horizontal Cartesian distance to pixels.
func (g Grid) PixelLength(d float64) (Pixel, error) {
	return g.cell.Width.Scale(d)
}

// CartesianLength converts a horizontal pixel length to Cartesian units.
func (g Grid) CartesianLength(p Pixel) (float64, error) {
	return p.InScale(g.cell.Width)
}

func (g Grid) String() string {
	return fmt.Sprintf("grid{cell %v x %v, origin %v}", g.cell.Width, g.cell.Height, g.origin)
}
