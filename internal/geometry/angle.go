package geometry

import "math"

// Degrees is a heading in its native unit: 0 is north and values increase
// clockwise as seen on the radar.
type Degrees float64

// Radians is an angle in radians.
type Radians float64

// RotationSign converts a clockwise heading into the counter-clockwise
// rotation used by Cartesian.Rotate. Rotating by the unsigned heading
// would turn the wrong way.
const RotationSign = -1

// ToRadians is a pure unit conversion; the sign is left untouched.
func (d Degrees) ToRadians() Radians {
	return Radians(float64(d) * math.Pi / 180)
}

// Rotation returns the angle to rotate by so that "north" ends up pointing
// along d. Zero heading is zero rotation; 90° is a quarter turn clockwise.
func (d Degrees) Rotation() Radians {
	return RotationSign * d.ToRadians()
}

// Normalize reduces d to [0,360).
func (d Degrees) Normalize() Degrees {
	h := math.Mod(float64(d), 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return Degrees(h)
}

// Compass returns the closest of the eight compass points.
func (d Degrees) Compass() string {
	h := (d + 22.5).Normalize()
	return [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}[int(h/45)%8]
}

// HeadingDifference returns the minimum difference between two headings,
// always in [0,180].
func HeadingDifference(a, b Degrees) Degrees {
	d := math.Abs(float64(a.Normalize() - b.Normalize()))
	if d > 180 {
		d = 360 - d
	}
	return Degrees(d)
}

func (r Radians) Degrees() Degrees {
	return Degrees(float64(r) * 180 / math.Pi)
}
