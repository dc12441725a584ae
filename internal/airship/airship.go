package airship

import (
	"errors"
	"fmt"
	"math"

	"flight-radar.klederson.com/internal/geometry"
)

// Derived-geometry defaults. Distances are in Cartesian kilometers.
const (
	// DefaultLookahead is the fixed distance from an airship's position to
	// its furthest-ahead point. It does not scale with speed.
	DefaultLookahead = 5.0

	DefaultConeRadius                     = 2.0
	DefaultConeHalfAngle geometry.Degrees = 30
)

var ErrInvalidAirship = errors.New("airship: invalid airship")

// Params is the per-frame configuration of derived geometry.
type Params struct {
	Lookahead     float64
	ConeRadius    float64
	ConeHalfAngle geometry.Degrees
}

// DefaultParams returns Params built from the package defaults.
func DefaultParams() Params {
	return Params{
		Lookahead:     DefaultLookahead,
		ConeRadius:    DefaultConeRadius,
		ConeHalfAngle: DefaultConeHalfAngle,
	}
}

// Validate rejects negative or non-finite distances and half angles
// outside [0,180].
func (p Params) Validate() error {
	if !finiteNonNegative(p.Lookahead) {
		return fmt.Errorf("airship: lookahead %v must be finite and non-negative", p.Lookahead)
	}
	if !finiteNonNegative(p.ConeRadius) {
		return fmt.Errorf("airship: cone radius %v must be finite and non-negative", p.ConeRadius)
	}
	if h := float64(p.ConeHalfAngle); !finiteNonNegative(h) || h > 180 {
		return fmt.Errorf("airship: cone half angle %v must be within [0,180]", h)
	}
	return nil
}

// Airship is the kinematic state of one tracked airship as supplied by the
// feed. Derived geometry is computed per query and never stored; nothing
// in this package mutates an Airship.
type Airship struct {
	ID       string
	Position geometry.Cartesian
	Heading  geometry.Degrees
	Speed    float64 // km/h
	Width    float64 // km, across the heading
	Length   float64 // km, along the heading
}

// Validate checks the invariants the derived geometry relies on.
func (a Airship) Validate() error {
	switch {
	case a.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidAirship)
	case !finite(a.Position.X) || !finite(a.Position.Y):
		return fmt.Errorf("%w: %s position %v", ErrInvalidAirship, a.ID, a.Position)
	case !finite(float64(a.Heading)):
		return fmt.Errorf("%w: %s heading %v", ErrInvalidAirship, a.ID, a.Heading)
	case !finiteNonNegative(a.Speed):
		return fmt.Errorf("%w: %s speed %v", ErrInvalidAirship, a.ID, a.Speed)
	case !finiteNonNegative(a.Width) || !finiteNonNegative(a.Length):
		return fmt.Errorf("%w: %s size %v x %v", ErrInvalidAirship, a.ID, a.Width, a.Length)
	}
	return nil
}

// Moving reports whether the airship has a non-zero speed. Guideline
// geometry only exists for moving airships.
func (a Airship) Moving() bool {
	return a.Speed > 0
}

// NoseCartesian is the position advanced by half the airship's length
// along its heading.
func (a Airship) NoseCartesian() geometry.Cartesian {
	return a.Position.Advance(a.Heading, a.Length/2)
}

// FurthestAheadCartesian is the position advanced by p.Lookahead along the
// heading. ok is false for a stationary airship, which has no guideline.
func (a Airship) FurthestAheadCartesian(p Params) (pt geometry.Cartesian, ok bool) {
	if !a.Moving() {
		return geometry.Cartesian{}, false
	}
	return a.Position.Advance(a.Heading, p.Lookahead), true
}

// Guideline runs from the nose to the furthest-ahead point. ok is false for
// a stationary airship.
func (a Airship) Guideline(p Params) (s geometry.Segment, ok bool) {
	end, ok := a.FurthestAheadCartesian(p)
	if !ok {
		return geometry.Segment{}, false
	}
	return geometry.Segment{From: a.NoseCartesian(), To: end}, true
}

// LeftVisionPolygon is the cone lobe between heading-half and heading,
// with vertices apex, outer edge, center line.
func (a Airship) LeftVisionPolygon(p Params) geometry.Polygon {
	apex := a.NoseCartesian()
	return geometry.Triangle(
		apex,
		apex.Advance(a.Heading-p.ConeHalfAngle, p.ConeRadius),
		apex.Advance(a.Heading, p.ConeRadius),
	)
}

// RightVisionPolygon is the cone lobe between heading and heading+half,
// with vertices apex, center line, outer edge.
func (a Airship) RightVisionPolygon(p Params) geometry.Polygon {
	apex := a.NoseCartesian()
	return geometry.Triangle(
		apex,
		apex.Advance(a.Heading, p.ConeRadius),
		apex.Advance(a.Heading+p.ConeHalfAngle, p.ConeRadius),
	)
}

func (a Airship) String() string {
	return fmt.Sprintf("%s@%v hdg %03.0f %s %.0fkm/h", a.ID, a.Position, float64(a.Heading.Normalize()),
		a.Heading.Compass(), a.Speed)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteNonNegative(v float64) bool {
	return finite(v) && v >= 0
}
