package airship

import (
	"math"
	"testing"

	"flight-radar.klederson.com/internal/geometry"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestFurthestAheadNorthbound(t *testing.T) {
	a := Airship{ID: "ZP-1", Heading: 0, Speed: 80, Length: 0.4}

	p, ok := a.FurthestAheadCartesian(Params{Lookahead: 5})
	require.True(t, ok)
	if diff := cmp.Diff(geometry.Cartesian{X: 0, Y: 5}, p, approx); diff != "" {
		t.Errorf("furthest-ahead mismatch (-want +got):\n%s", diff)
	}
}

func TestFurthestAheadIgnoresSpeedMagnitude(t *testing.T) {
	slow := Airship{ID: "A", Heading: 90, Speed: 1}
	fast := Airship{ID: "B", Heading: 90, Speed: 500}

	ps, _ := slow.FurthestAheadCartesian(DefaultParams())
	pf, _ := fast.FurthestAheadCartesian(DefaultParams())
	assert.Equal(t, ps, pf)
	assert.InDelta(t, DefaultLookahead, ps.X, 1e-9)
}

func TestStationaryAirshipHasNoGuideline(t *testing.T) {
	a := Airship{ID: "ZP-2", Position: geometry.Cartesian{X: 1, Y: 2}, Heading: 45, Speed: 0, Length: 1}

	assert.False(t, a.Moving())
	_, ok := a.FurthestAheadCartesian(DefaultParams())
	assert.False(t, ok)
	_, ok = a.Guideline(DefaultParams())
	assert.False(t, ok)

	// the nose still exists for a stationary airship
	nose := a.NoseCartesian()
	assert.InDelta(t, 0.5, nose.Distance(a.Position), 1e-9)
}

func TestNoseFollowsHeading(t *testing.T) {
	tests := []struct {
		heading geometry.Degrees
		want    geometry.Cartesian
	}{
		{0, geometry.Cartesian{X: 3, Y: 4.5}},
		{90, geometry.Cartesian{X: 3.5, Y: 4}},
		{180, geometry.Cartesian{X: 3, Y: 3.5}},
		{270, geometry.Cartesian{X: 2.5, Y: 4}},
	}
	for _, tt := range tests {
		a := Airship{ID: "N", Position: geometry.Cartesian{X: 3, Y: 4}, Heading: tt.heading, Length: 1}
		if diff := cmp.Diff(tt.want, a.NoseCartesian(), approx); diff != "" {
			t.Errorf("heading %v nose mismatch (-want +got):\n%s", tt.heading, diff)
		}
	}
}

func TestNoseQuarterTurnIsClockwiseOnScreen(t *testing.T) {
	g, err := geometry.GridFor(40, 40, 300, 300)
	require.NoError(t, err)

	north := Airship{ID: "N", Heading: 0, Length: 2}
	east := Airship{ID: "E", Heading: 90, Length: 2}

	n, err := g.ToPixel(north.NoseCartesian())
	require.NoError(t, err)
	e, err := g.ToPixel(east.NoseCartesian())
	require.NoError(t, err)

	nx, ny := n.XY()
	ex, ey := e.XY()
	assert.Equal(t, []float64{300, 260}, []float64{nx, ny})
	assert.Equal(t, []float64{340, 300}, []float64{ex, ey})
}

func TestGuideline(t *testing.T) {
	a := Airship{ID: "G", Heading: 180, Speed: 40, Length: 1}
	s, ok := a.Guideline(Params{Lookahead: 3})
	require.True(t, ok)

	want := geometry.Segment{From: geometry.Cartesian{X: 0, Y: -0.5}, To: geometry.Cartesian{X: 0, Y: -3}}
	if diff := cmp.Diff(want, s, approx); diff != "" {
		t.Errorf("guideline mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 2.5, s.Length(), 1e-9)
}

func TestVisionPolygons(t *testing.T) {
	a := Airship{ID: "V", Position: geometry.Cartesian{X: 1, Y: 1}, Heading: 0, Speed: 10, Length: 2}
	p := Params{ConeRadius: 2, ConeHalfAngle: 90}

	left := a.LeftVisionPolygon(p)
	right := a.RightVisionPolygon(p)
	require.Equal(t, 3, left.Len())
	require.Equal(t, 3, right.Len())

	apex := geometry.Cartesian{X: 1, Y: 2}
	wantLeft := []geometry.Cartesian{apex, {X: -1, Y: 2}, {X: 1, Y: 4}}
	wantRight := []geometry.Cartesian{apex, {X: 1, Y: 4}, {X: 3, Y: 2}}
	if diff := cmp.Diff(wantLeft, left.Points(), approx); diff != "" {
		t.Errorf("left cone mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRight, right.Points(), approx); diff != "" {
		t.Errorf("right cone mismatch (-want +got):\n%s", diff)
	}
}

func TestVisionConeRadius(t *testing.T) {
	for h := geometry.Degrees(0); h < 360; h += 15 {
		a := Airship{ID: "R", Position: geometry.Cartesian{X: -2, Y: 7}, Heading: h, Length: 0.3}
		apex := a.NoseCartesian()
		pts := append(a.LeftVisionPolygon(DefaultParams()).Points(), a.RightVisionPolygon(DefaultParams()).Points()...)
		for i, pt := range pts {
			if i%3 == 0 {
				assert.Equal(t, apex, pt)
				continue
			}
			assert.InDelta(t, DefaultConeRadius, pt.Distance(apex), 1e-9)
		}
	}
}

func TestAirshipValidate(t *testing.T) {
	good := Airship{ID: "OK", Speed: 10, Width: 0.1, Length: 0.4}
	require.NoError(t, good.Validate())

	bad := map[string]Airship{
		"empty id":       {Speed: 1},
		"negative speed": {ID: "X", Speed: -1},
		"nan heading":    {ID: "X", Heading: geometry.Degrees(math.NaN())},
		"inf position":   {ID: "X", Position: geometry.Cartesian{X: math.Inf(1)}},
		"negative width": {ID: "X", Width: -0.1},
	}
	for name, a := range bad {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, a.Validate(), ErrInvalidAirship)
		})
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
	assert.Error(t, Params{Lookahead: -1}.Validate())
	assert.Error(t, Params{ConeRadius: math.NaN()}.Validate())
	assert.Error(t, Params{ConeHalfAngle: 190}.Validate())
}
