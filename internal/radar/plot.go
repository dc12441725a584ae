package radar

import (
	"image/color"
	"math"

	"flight-radar.klederson.com/internal/geometry"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	plotGrid   = color.RGBA{R: 0x1E, G: 0x3A, B: 0x1E, A: 0xFF}
	plotRing   = color.RGBA{G: 0x8F, B: 0x11, A: 0xFF}
	plotScale  = color.RGBA{R: 0xFF, G: 0x33, A: 0xFF}
	plotGuide  = color.RGBA{R: 0xFF, G: 0x55, B: 0x55, A: 0xFF}
	plotLabel  = color.RGBA{G: 0x99, B: 0x33, A: 0xFF}
	plotShadow = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}
	plotShip   = color.RGBA{G: 0xAA, B: 0x77, A: 0xFF}
	plotClose  = color.RGBA{R: 0xFF, G: 0xAA, A: 0xFF}
	plotLeft   = color.RGBA{R: 0xFF, A: 0x40}
	plotRight  = color.RGBA{B: 0xFF, A: 0x40}
)

// PlotSurface renders a scene into an image file with gonum/plot. Pixel y
// grows downward, so every point is mirrored onto the plot's upward y axis.
// The first drawing error is kept and reported by Save.
type PlotSurface struct {
	p             *plot.Plot
	width, height float64
	err           error
}

// NewPlotSurface returns an empty surface covering width x height pixels.
func NewPlotSurface(width, height float64) *PlotSurface {
	p := plot.New()
	p.HideAxes()
	return &PlotSurface{p: p, width: width, height: height}
}

func xy(c geometry.PixelCoordinate) plotter.XY {
	x, y := c.XY()
	return plotter.XY{X: x, Y: -y}
}

func plotStroke(s Stroke) color.Color {
	switch s {
	case StrokeRing:
		return plotRing
	case StrokeScale:
		return plotScale
	case StrokeGuide:
		return plotGuide
	case StrokeLabel:
		return plotLabel
	default:
		return plotGrid
	}
}

func (ps *PlotSurface) addLine(pts plotter.XYs, s Stroke) {
	if ps.err != nil {
		return
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		ps.err = err
		return
	}
	l.Color = plotStroke(s)
	l.Width = vg.Points(1)
	if s == StrokeScale || s == StrokeGuide {
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	ps.p.Add(l)
}

func (ps *PlotSurface) addPolygon(pts plotter.XYs, fill color.Color) {
	if ps.err != nil {
		return
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		ps.err = err
		return
	}
	poly.Color = fill
	poly.LineStyle.Width = 0
	ps.p.Add(poly)
}

func (ps *PlotSurface) Line(from, to geometry.PixelCoordinate, s Stroke) {
	ps.addLine(plotter.XYs{xy(from), xy(to)}, s)
}

func (ps *PlotSurface) Circle(center geometry.PixelCoordinate, radius geometry.Pixel, s Stroke) {
	const steps = 96
	c := xy(center)
	r := radius.Value()
	pts := make(plotter.XYs, steps+1)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / steps
		pts[i] = plotter.XY{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	ps.addLine(pts, s)
}

func (ps *PlotSurface) FillPolygon(p geometry.PixelPolygon, f Fill) {
	pts := make(plotter.XYs, 0, p.Len())
	for _, c := range p.Points() {
		pts = append(pts, xy(c))
	}
	fill := plotLeft
	if f == FillRightCone {
		fill = plotRight
	}
	ps.addPolygon(pts, fill)
}

func (ps *PlotSurface) Text(at geometry.PixelCoordinate, text string, _ Stroke) {
	if ps.err != nil {
		return
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{xy(at)},
		Labels: []string{text},
	})
	if err != nil {
		ps.err = err
		return
	}
	ps.p.Add(labels)
}

// Marker draws a triangle of the given size pointing along the nose.
func (ps *PlotSurface) Marker(center geometry.PixelCoordinate, rotation geometry.Radians, width, height geometry.Pixel, m Mark) {
	// On the mirrored axis the screen nose direction is the Cartesian one.
	nose := geometry.North.Rotate(rotation)
	side := geometry.Cartesian{X: nose.Y, Y: -nose.X}
	c := xy(center)
	hw, hh := width.Half().Value(), height.Half().Value()

	at := func(along, across float64) plotter.XY {
		return plotter.XY{
			X: c.X + nose.X*along + side.X*across,
			Y: c.Y + nose.Y*along + side.Y*across,
		}
	}
	pts := plotter.XYs{at(hh, 0), at(-hh, hw), at(-hh, -hw)}

	fill := plotShip
	switch m {
	case MarkShadow:
		fill = plotShadow
	case MarkAirshipClose:
		fill = plotClose
	}
	ps.addPolygon(pts, fill)
}

// Save writes the plot to path; the format follows the file extension.
// w and h are the output size in points.
func (ps *PlotSurface) Save(path string, w, h float64) error {
	if ps.err != nil {
		return ps.err
	}
	ps.p.X.Min, ps.p.X.Max = 0, ps.width
	ps.p.Y.Min, ps.p.Y.Max = -ps.height, 0
	return ps.p.Save(vg.Length(w), vg.Length(h), path)
}
