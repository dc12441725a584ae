package geometry

import "fmt"

// Polygon is an ordered list of Cartesian vertices. The order is the fill
// boundary and is preserved by projection.
type Polygon struct {
	points []Cartesian
}

// NewPolygon copies points into a Polygon. At least one vertex is required.
func NewPolygon(points ...Cartesian) (Polygon, error) {
	if len(points) == 0 {
		return Polygon{}, ErrEmptyPolygon
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return Polygon{}, fmt.Errorf("%w: vertex %d %v", ErrNonFinite, i, p)
		}
	}
	return Polygon{points: append([]Cartesian(nil), points...)}, nil
}

// Triangle builds a three-vertex polygon. The caller guarantees finite input.
func Triangle(a, b, c Cartesian) Polygon {
	return Polygon{points: []Cartesian{a, b, c}}
}

func (p Polygon) Len() int { return len(p.points) }

// Points returns a copy of the vertices.
func (p Polygon) Points() []Cartesian {
	return append([]Cartesian(nil), p.points...)
}

// PixelPolygon is a Polygon projected into pixel space by Grid.ToPixels.
type PixelPolygon struct {
	points []PixelCoordinate
}

// NewPixelPolygon copies points into a PixelPolygon.
func NewPixelPolygon(points ...PixelCoordinate) (PixelPolygon, error) {
	if len(points) == 0 {
		return PixelPolygon{}, ErrEmptyPolygon
	}
	return PixelPolygon{points: append([]PixelCoordinate(nil), points...)}, nil
}

func (p PixelPolygon) Len() int { return len(p.points) }

// Points returns a copy of the vertices.
func (p PixelPolygon) Points() []PixelCoordinate {
	return append([]PixelCoordinate(nil), p.points...)
}

// Contains reports whether (x, y) lies inside p by the even-odd rule.
func (p PixelPolygon) Contains(x, y float64) bool {
	inside := false
	n := len(p.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := p.points[i].XY()
		xj, yj := p.points[j].XY()
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the top-left and bottom-right corners of p.
func (p PixelPolygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return
	}
	minX, minY = p.points[0].XY()
	maxX, maxY = minX, minY
	for _, pt := range p.points[1:] {
		x, y := pt.XY()
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return
}

// Segment is a Cartesian line piece.
type Segment struct {
	From, To Cartesian
}

func (s Segment) Length() float64 {
	return s.From.Distance(s.To)
}

// PixelSegment is a Segment projected into pixel space.
type PixelSegment struct {
	From, To PixelCoordinate
}
