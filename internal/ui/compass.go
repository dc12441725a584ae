package ui

import (
	"math"
	"strings"

	"flight-radar.klederson.com/internal/geometry"
	"github.com/charmbracelet/lipgloss"
)

// RenderCompass renders a heading dial with an arrow along heading. The
// arrow grows with speedFrac in [0,1]; a stationary airship shows no arrow.
func RenderCompass(width, height int, heading geometry.Degrees, speedFrac float64) string {
	if width < 9 || height < 5 {
		return ""
	}

	grid := make([][]byte, height)
	isArrow := make([][]bool, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", width))
		isArrow[i] = make([]bool, width)
	}

	fcx := float64(width) / 2.0
	fcy := float64(height) / 2.0
	rx := max(fcx-2.0, 3) // horizontal radius in columns
	ry := max(fcy-2.0, 2) // vertical radius in rows

	const steps = 80
	for i := 0; i < steps; i++ {
		a := geometry.Degrees(float64(i) * 360 / steps)
		u := geometry.Unit(a)
		col := int(math.Round(fcx + rx*u.X))
		row := int(math.Round(fcy - ry*u.Y))
		if col >= 0 && col < width && row >= 0 && row < height && grid[row][col] == ' ' {
			grid[row][col] = dialChar(a)
		}
	}

	cx := int(math.Round(fcx))
	cy := int(math.Round(fcy))

	setGrid(grid, cx, cy-int(math.Round(ry))-1, 'N')
	setGrid(grid, cx, cy+int(math.Round(ry))+1, 'S')
	setGrid(grid, cx+int(math.Round(rx))+1, cy, 'E')
	setGrid(grid, cx-int(math.Round(rx))-1, cy, 'W')
	setGrid(grid, cx, cy, '+')

	speedFrac = math.Min(math.Max(speedFrac, 0), 1)
	if speedFrac > 0 {
		const minFrac, maxFrac = 0.3, 0.85
		frac := minFrac + (maxFrac-minFrac)*speedFrac
		u := geometry.Unit(heading)

		shaft := max(int(math.Max(rx, ry)*frac), 2)
		tipCol, tipRow := cx, cy
		for s := 1; s <= shaft; s++ {
			t := float64(s) / float64(shaft) * frac
			col := int(math.Round(fcx + t*rx*u.X))
			row := int(math.Round(fcy - t*ry*u.Y))
			if col >= 0 && col < width && row >= 0 && row < height {
				grid[row][col] = shaftChar(heading)
				isArrow[row][col] = true
				tipCol, tipRow = col, row
			}
		}
		grid[tipRow][tipCol] = arrowTip(heading)
		isArrow[tipRow][tipCol] = true
	}

	arrowSty := lipgloss.NewStyle().Foreground(ColorAirship).Bold(true)
	ringSty := lipgloss.NewStyle().Foreground(ColorDimGreen)
	markSty := lipgloss.NewStyle().Foreground(ColorMatrixGreen).Bold(true)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := grid[row][col]
			switch {
			case isArrow[row][col]:
				sb.WriteString(arrowSty.Render(string(ch)))
			case ch == 'N' || ch == 'S' || ch == 'E' || ch == 'W' || ch == '+':
				sb.WriteString(markSty.Render(string(ch)))
			case ch != ' ':
				sb.WriteString(ringSty.Render(string(ch)))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func setGrid(grid [][]byte, col, row int, ch byte) {
	if row >= 0 && row < len(grid) && col >= 0 && col < len(grid[row]) {
		grid[row][col] = ch
	}
}

func sector(h geometry.Degrees) int {
	return int(math.Round(float64(h.Normalize())/45)) % 8
}

// dialChar is the tangent glyph of the dial at heading h.
func dialChar(h geometry.Degrees) byte {
	return "-\\|/-\\|/"[sector(h)]
}

// shaftChar is the line glyph for a shaft running along h.
func shaftChar(h geometry.Degrees) byte {
	return "|/-\\|/-\\"[sector(h)]
}

// arrowTip is the arrowhead glyph for h.
func arrowTip(h geometry.Degrees) byte {
	return "^/>\\v/<\\"[sector(h)]
}
