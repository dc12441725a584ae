package scene

import (
	"errors"
	"fmt"
	"math"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/config"
	"flight-radar.klederson.com/internal/geometry"
)

var ErrSurfaceTooSmall = errors.New("scene: surface too small")

// Frame is everything one render pass reads. It is built whole from the
// config, the surface size, the airship snapshot and the view, and is never
// patched; the next frame is a new Frame.
type Frame struct {
	Width, Height float64 // surface size in pixels
	Range         float64 // km shown from center to the nearest edge at zoom 1
	Grid          geometry.Grid
	Rings         geometry.Rings
	Airships      *airship.Airships
	Params        airship.Params
	View          View
	Proximity     float64
}

// NewFrame lays out a frame on a width x height pixel surface. The
// Cartesian origin sits at the surface center and, at zoom 1, Range
// kilometers reach the nearest edge.
func NewFrame(cfg *config.Config, width, height float64, ships *airship.Airships, v View) (Frame, error) {
	if !(width >= 2 && height >= 2) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Frame{}, fmt.Errorf("%w: %vx%v", ErrSurfaceTooSmall, width, height)
	}

	radius := math.Min(width, height) / 2
	cell := radius / cfg.Display.Range
	base, err := geometry.GridFor(cell, cell, width/2, height/2)
	if err != nil {
		return Frame{}, err
	}
	grid, err := base.Scaled(v.Zoom)
	if err != nil {
		return Frame{}, err
	}

	ringRadius, err := grid.PixelLength(cfg.Display.Range)
	if err != nil {
		return Frame{}, err
	}
	lineWidth, err := geometry.NewPixel(cfg.Display.RingLineWidth)
	if err != nil {
		return Frame{}, err
	}
	rings, err := geometry.NewRings(grid.Origin(), ringRadius, cfg.Display.RingCount, lineWidth)
	if err != nil {
		return Frame{}, err
	}

	params := Params(cfg)
	if err := params.Validate(); err != nil {
		return Frame{}, err
	}

	return Frame{
		Width:     width,
		Height:    height,
		Range:     cfg.Display.Range,
		Grid:      grid,
		Rings:     rings,
		Airships:  ships,
		Params:    params,
		View:      v,
		Proximity: cfg.Display.Proximity,
	}, nil
}

// Params returns the derived-geometry parameters configured in cfg.
func Params(cfg *config.Config) airship.Params {
	return airship.Params{
		Lookahead:     cfg.Vision.Lookahead,
		ConeRadius:    cfg.Vision.ConeRadius,
		ConeHalfAngle: geometry.Degrees(cfg.Vision.ConeHalfAngle),
	}
}

// GridLines returns the x positions of vertical lines and the y positions
// of horizontal lines, one per cell, aligned on the origin and clipped to
// the surface.
func (f Frame) GridLines() (xs, ys []geometry.Pixel) {
	c := f.Grid.Cell()
	ox, oy := f.Grid.Origin().XY()
	return gridLines(ox, c.Width.Value(), f.Width), gridLines(oy, c.Height.Value(), f.Height)
}

func gridLines(origin, step, extent float64) []geometry.Pixel {
	first := origin - math.Floor(origin/step)*step
	var lines []geometry.Pixel
	for v := first; v <= extent; v += step {
		lines = append(lines, geometry.MustPixel(v))
	}
	return lines
}

// ScaleBar is a one kilometer reference mark with its caption.
type ScaleBar struct {
	Bar     geometry.PixelSegment
	Caption geometry.PixelCoordinate
	Text    string
}

// ScaleBars returns a horizontal and a vertical "1 km" bar near the lower
// right of the range.
func (f Frame) ScaleBars() ([]ScaleBar, error) {
	c := f.Grid.Cell()
	cw, ch := c.Width.Value(), c.Height.Value()

	hStart := geometry.Cartesian{X: config.ScaleBarHorizX * f.Range, Y: config.ScaleBarHorizY * f.Range}
	horiz, err := f.Grid.ToPixelSegment(geometry.Segment{From: hStart, To: hStart.Add(geometry.Cartesian{X: 1})})
	if err != nil {
		return nil, err
	}

	vStart := geometry.Cartesian{X: config.ScaleBarVertX * f.Range, Y: config.ScaleBarVertY * f.Range}
	vert, err := f.Grid.ToPixelSegment(geometry.Segment{From: vStart, To: vStart.Add(geometry.Cartesian{Y: -1})})
	if err != nil {
		return nil, err
	}

	return []ScaleBar{
		{Bar: horiz, Caption: horiz.From.Offset(0.35*cw, 0.2*ch), Text: config.ScaleText},
		{Bar: vert, Caption: vert.From.Offset(0.05*cw, 0.55*ch), Text: config.ScaleText},
	}, nil
}
