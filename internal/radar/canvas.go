package radar

import (
	"math"
	"strings"

	"flight-radar.klederson.com/internal/config"
	"flight-radar.klederson.com/internal/geometry"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorGrid   = lipgloss.Color("#1E3A1E")
	colorRing   = lipgloss.Color("#008F11")
	colorScale  = lipgloss.Color("#FF3300")
	colorGuide  = lipgloss.Color("#FF5555")
	colorLabel  = lipgloss.Color("#00FF41")
	colorShadow = lipgloss.Color("#3A3A3A")
	colorShip   = lipgloss.Color("#00FFAA")
	colorClose  = lipgloss.Color("#FFAA00")
	colorLeft   = lipgloss.Color("#4A0000")
	colorRight  = lipgloss.Color("#00004A")
)

type cell struct {
	ch   rune
	fg   lipgloss.Color
	bg   lipgloss.Color
	bold bool
}

// Canvas is a terminal Surface. One column is one pixel wide and one row is
// 1/AspectRatio pixels tall, so Cartesian circles stay round on screen.
type Canvas struct {
	cols, rows int
	cells      []cell
}

// NewCanvas returns a blank cols x rows canvas.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 1), max(rows, 1)
	c := &Canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range c.cells {
		c.cells[i].ch = ' '
	}
	return c
}

// PixelSize is the pixel-space extent of the canvas.
func (c *Canvas) PixelSize() (w, h float64) {
	return float64(c.cols), float64(c.rows) / config.AspectRatio
}

func (c *Canvas) toCell(x, y float64) (col, row int) {
	return int(math.Round(x)), int(math.Round(y * config.AspectRatio))
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func (c *Canvas) plot(x, y float64, ch rune, fg lipgloss.Color, bold bool) {
	if cl := c.at(c.toCell(x, y)); cl != nil {
		cl.ch, cl.fg, cl.bold = ch, fg, bold
	}
}

func strokeColor(s Stroke) lipgloss.Color {
	switch s {
	case StrokeRing:
		return colorRing
	case StrokeScale:
		return colorScale
	case StrokeGuide:
		return colorGuide
	case StrokeLabel:
		return colorLabel
	default:
		return colorGrid
	}
}

func (c *Canvas) Line(from, to geometry.PixelCoordinate, s Stroke) {
	x0, y0 := from.XY()
	x1, y1 := to.XY()
	dx, dy := x1-x0, y1-y0

	// step at half-cell resolution in screen space
	steps := int(math.Ceil(2 * math.Max(math.Abs(dx), math.Abs(dy)*config.AspectRatio)))
	ch := lineChar(dx, dy*config.AspectRatio)
	dashed := s == StrokeScale || s == StrokeGuide
	for i := 0; i <= steps; i++ {
		if dashed && (i/2)%4 >= 1 {
			continue
		}
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		c.plot(x0+t*dx, y0+t*dy, ch, strokeColor(s), false)
	}
}

func (c *Canvas) Circle(center geometry.PixelCoordinate, radius geometry.Pixel, s Stroke) {
	cx, cy := center.XY()
	r := radius.Value()
	steps := max(int(8*r), 16)
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps) // 0=north, clockwise
		c.plot(cx+r*math.Sin(a), cy-r*math.Cos(a), ringChar(a), strokeColor(s), false)
	}
}

// FillPolygon tints the background of every cell whose center lies inside
// p, leaving whatever was drawn there readable.
func (c *Canvas) FillPolygon(p geometry.PixelPolygon, f Fill) {
	bg := colorLeft
	if f == FillRightCone {
		bg = colorRight
	}
	minX, minY, maxX, maxY := p.Bounds()
	c0, r0 := c.toCell(minX, minY)
	c1, r1 := c.toCell(maxX, maxY)
	for row := max(r0, 0); row <= min(r1, c.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, c.cols-1); col++ {
			if p.Contains(float64(col), float64(row)/config.AspectRatio) {
				c.cells[row*c.cols+col].bg = bg
			}
		}
	}
}

func (c *Canvas) Text(at geometry.PixelCoordinate, text string, s Stroke) {
	col, row := c.toCell(at.XY())
	for i, r := range []rune(text) {
		if cl := c.at(col+i, row); cl != nil {
			cl.ch, cl.fg, cl.bold = r, strokeColor(s), s == StrokeLabel
		}
	}
}

// Marker draws a single arrow glyph pointing along the nose direction.
func (c *Canvas) Marker(center geometry.PixelCoordinate, rotation geometry.Radians, _, _ geometry.Pixel, m Mark) {
	nose := geometry.North.Rotate(rotation)
	glyph := arrowGlyph(geometry.Origin.Bearing(nose))

	x, y := center.XY()
	switch m {
	case MarkShadow:
		c.plot(x, y, '.', colorShadow, false)
	case MarkAirshipClose:
		c.plot(x, y, glyph, colorClose, true)
	default:
		c.plot(x, y, glyph, colorShip, true)
	}
}

// String renders the canvas as styled terminal rows.
func (c *Canvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if cl.fg == "" && cl.bg == "" {
				sb.WriteRune(cl.ch)
				continue
			}
			sty := lipgloss.NewStyle().Bold(cl.bold)
			if cl.fg != "" {
				sty = sty.Foreground(cl.fg)
			}
			if cl.bg != "" {
				sty = sty.Background(cl.bg)
			}
			sb.WriteString(sty.Render(string(cl.ch)))
		}
		if row < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Plain renders the canvas without styling.
func (c *Canvas) Plain() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			sb.WriteRune(c.cells[row*c.cols+col].ch)
		}
		if row < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// lineChar picks a glyph for a line running (dx, dy) in screen cells.
func lineChar(dx, dy float64) rune {
	if dx == 0 && dy == 0 {
		return '.'
	}
	a := math.Atan2(math.Abs(dy), math.Abs(dx))
	switch {
	case a < math.Pi/8:
		return '-'
	case a > 3*math.Pi/8:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// ringChar returns the tangent glyph of a circle at angle a (radians,
// 0=north, clockwise).
func ringChar(a float64) rune {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	switch int(math.Round(a/(math.Pi/4))) % 8 {
	case 0, 4:
		return '-'
	case 1, 5:
		return '\\'
	case 2, 6:
		return '|'
	default:
		return '/'
	}
}

// arrowGlyph returns an arrowhead for a compass heading.
func arrowGlyph(h geometry.Degrees) rune {
	switch h.Compass() {
	case "N":
		return '^'
	case "NE":
		return '/'
	case "E":
		return '>'
	case "SE":
		return '\\'
	case "S":
		return 'v'
	case "SW":
		return '/'
	case "W":
		return '<'
	default:
		return '\\'
	}
}
