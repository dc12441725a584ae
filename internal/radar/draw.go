package radar

import (
	"flight-radar.klederson.com/internal/geometry"
	"flight-radar.klederson.com/internal/scene"
)

// Stroke selects the line and text style on a Surface.
type Stroke int

const (
	StrokeGrid Stroke = iota
	StrokeRing
	StrokeScale // dashed
	StrokeGuide // dashed
	StrokeLabel
)

// Fill selects a polygon fill style.
type Fill int

const (
	FillLeftCone Fill = iota
	FillRightCone
)

// Mark selects an airship marker style.
type Mark int

const (
	MarkShadow Mark = iota
	MarkAirship
	MarkAirshipClose
)

// Surface is a 2D drawing context in pixel space, y increasing downward.
// Implementations only rasterize what they are given.
type Surface interface {
	Line(from, to geometry.PixelCoordinate, s Stroke)
	Circle(center geometry.PixelCoordinate, radius geometry.Pixel, s Stroke)
	FillPolygon(p geometry.PixelPolygon, f Fill)
	Text(at geometry.PixelCoordinate, text string, s Stroke)
	// Marker draws a width x height sprite at center. rotation follows
	// geometry.Degrees.Rotation: North rotated by it is the nose direction.
	Marker(center geometry.PixelCoordinate, rotation geometry.Radians, width, height geometry.Pixel, m Mark)
}

// Draw paints s onto surf: grid, scale bars, rings, then vision cones,
// shadows, guidelines and finally airships with their labels, so that
// airships are never hidden under derived geometry.
func Draw(surf Surface, s scene.Scene) {
	drawGrid(surf, s)
	for _, b := range s.ScaleBars {
		surf.Line(b.Bar.From, b.Bar.To, StrokeScale)
		surf.Text(b.Caption, b.Text, StrokeScale)
	}
	for _, r := range s.RingRadii {
		surf.Circle(s.Rings.Center, r, StrokeRing)
	}

	for _, sp := range s.Sprites {
		if sp.LeftCone != nil {
			surf.FillPolygon(*sp.LeftCone, FillLeftCone)
		}
		if sp.RightCone != nil {
			surf.FillPolygon(*sp.RightCone, FillRightCone)
		}
	}
	for _, sp := range s.Sprites {
		surf.Marker(sp.Shadow, sp.Rotation, sp.Width, sp.Height, MarkShadow)
	}
	for _, sp := range s.Sprites {
		if sp.Guideline != nil {
			surf.Line(sp.Guideline.From, sp.Guideline.To, StrokeGuide)
		}
	}
	for _, sp := range s.Sprites {
		m := MarkAirship
		if sp.Close {
			m = MarkAirshipClose
		}
		surf.Text(sp.Label, sp.ID, StrokeLabel)
		surf.Marker(sp.Body, sp.Rotation, sp.Width, sp.Height, m)
	}
}

func drawGrid(surf Surface, s scene.Scene) {
	top := geometry.MustPixel(0)
	bottom := geometry.MustPixel(s.Height)
	for _, x := range s.GridX {
		surf.Line(geometry.PixelCoordinate{X: x, Y: top}, geometry.PixelCoordinate{X: x, Y: bottom}, StrokeGrid)
	}
	left := geometry.MustPixel(0)
	right := geometry.MustPixel(s.Width)
	for _, y := range s.GridY {
		surf.Line(geometry.PixelCoordinate{X: left, Y: y}, geometry.PixelCoordinate{X: right, Y: y}, StrokeGrid)
	}
}
