package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Precision is the number of fractional digits kept by every Pixel.
const Precision = 4

// Pixel is a pixel-space scalar length. Every construction rounds the value
// to Precision fractional digits, half away from zero, so repeated scaling
// cannot accumulate floating-point drift.
type Pixel struct {
	value float64
}

// NewPixel returns a rounded Pixel, or ErrNonFinite for NaN and ±Inf.
func NewPixel(v float64) (Pixel, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Pixel{}, fmt.Errorf("%w: pixel length %v", ErrNonFinite, v)
	}
	return Pixel{value: round(v)}, nil
}

// MustPixel is NewPixel for known-good literals; it panics on non-finite input.
func MustPixel(v float64) Pixel {
	p, err := NewPixel(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pixel) Value() float64 {
	return p.value
}

// Half returns p/2, used to center sprites and offsets.
func (p Pixel) Half() Pixel {
	return Pixel{value: round(p.value / 2)}
}

// Scale returns p*k, or ErrNonFinite when the product overflows or k is
// not finite.
func (p Pixel) Scale(k float64) (Pixel, error) {
	v := p.value * k
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Pixel{}, fmt.Errorf("%w: %v scaled by %v", ErrNonFinite, p.value, k)
	}
	return Pixel{value: round(v)}, nil
}

// InScale returns the dimensionless ratio p/cell, i.e. how many cells of
// size cell fit in p. A zero cell is rejected with ErrDegenerateScale
// instead of producing ±Inf or NaN.
func (p Pixel) InScale(cell Pixel) (float64, error) {
	if cell.value == 0 {
		return 0, fmt.Errorf("%w: %v in scale of zero", ErrDegenerateScale, p.value)
	}
	return p.value / cell.value, nil
}

func (p Pixel) String() string {
	return fmt.Sprintf("%.4fpx", p.value)
}

func round(v float64) float64 {
	r := scalar.Round(v, Precision)
	if r == 0 {
		// normalize -0
		return 0
	}
	return r
}

// PixelCoordinate is an immutable point in pixel space, y increasing downward.
type PixelCoordinate struct {
	X, Y Pixel
}

// NewPixelCoordinate builds a coordinate from raw values.
func NewPixelCoordinate(x, y float64) (PixelCoordinate, error) {
	px, err := NewPixel(x)
	if err != nil {
		return PixelCoordinate{}, err
	}
	py, err := NewPixel(y)
	if err != nil {
		return PixelCoordinate{}, err
	}
	return PixelCoordinate{X: px, Y: py}, nil
}

// MustPixelCoordinate is NewPixelCoordinate for values known to be finite.
func MustPixelCoordinate(x, y float64) PixelCoordinate {
	c, err := NewPixelCoordinate(x, y)
	if err != nil {
		panic(err)
	}
	return c
}

// XY returns the raw coordinate values for a drawing surface.
func (c PixelCoordinate) XY() (float64, float64) {
	return c.X.value, c.Y.value
}

// Offset returns the coordinate moved by (dx, dy) pixels. dx and dy must be
// finite.
func (c PixelCoordinate) Offset(dx, dy float64) PixelCoordinate {
	return PixelCoordinate{
		X: Pixel{value: round(c.X.value + dx)},
		Y: Pixel{value: round(c.Y.value + dy)},
	}
}

func (c PixelCoordinate) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.X.value, c.Y.value)
}
