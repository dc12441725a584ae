package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Cartesian is a radar-space point in kilometers from the display center.
// Unlike pixel space, y increases to the north.
type Cartesian struct {
	X, Y float64
}

// Origin is the display center.
var Origin = Cartesian{}

// North is the unit vector of heading 0.
var North = Cartesian{X: 0, Y: 1}

// NewCartesian rejects non-finite components.
func NewCartesian(x, y float64) (Cartesian, error) {
	if !finite(x) || !finite(y) {
		return Cartesian{}, fmt.Errorf("%w: cartesian (%v, %v)", ErrNonFinite, x, y)
	}
	return Cartesian{X: x, Y: y}, nil
}

func (c Cartesian) vec() r2.Vec { return r2.Vec(c) }

func (c Cartesian) Add(o Cartesian) Cartesian {
	return Cartesian(r2.Add(c.vec(), o.vec()))
}

func (c Cartesian) Sub(o Cartesian) Cartesian {
	return Cartesian(r2.Sub(c.vec(), o.vec()))
}

func (c Cartesian) Scale(k float64) Cartesian {
	return Cartesian(r2.Scale(k, c.vec()))
}

// Norm is the vector magnitude.
func (c Cartesian) Norm() float64 {
	return r2.Norm(c.vec())
}

// Distance returns the Euclidean distance between two points.
func (c Cartesian) Distance(o Cartesian) float64 {
	return c.Sub(o).Norm()
}

// Rotate rotates c about the origin, counter-clockwise for positive r.
func (c Cartesian) Rotate(r Radians) Cartesian {
	return Cartesian(r2.Rotate(c.vec(), float64(r), r2.Vec{}))
}

// Advance returns c moved distance kilometers along heading h.
func (c Cartesian) Advance(h Degrees, distance float64) Cartesian {
	return c.Add(Unit(h).Scale(distance))
}

// Bearing returns the heading from c to o. Coincident points give 0.
func (c Cartesian) Bearing(o Cartesian) Degrees {
	d := o.Sub(c)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	// atan2(x, y) measures from +y, clockwise positive
	return Radians(math.Atan2(d.X, d.Y)).Degrees().Normalize()
}

func (c Cartesian) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}

// Unit returns the Cartesian unit vector for heading h: north for 0, east
// for 90. It is derived by rotating North through h.Rotation().
func Unit(h Degrees) Cartesian {
	return North.Rotate(h.Rotation())
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
