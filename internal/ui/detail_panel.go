package ui

import (
	"fmt"
	"strings"

	"flight-radar.klederson.com/internal/airship"
	"github.com/charmbracelet/lipgloss"
)

// maxDialSpeed is the speed at which the heading arrow reaches full length.
const maxDialSpeed = 150.0

// Detail is everything the detail panel shows about the selected airship.
type Detail struct {
	Airship      airship.Airship
	Params       airship.Params
	SpeedHistory []float64
	CloseTo      []string // ids within the proximity radius
}

// RenderDetailPanel renders the selected airship's kinematics, derived
// geometry and a heading dial.
func RenderDetailPanel(d Detail, width, height int) string {
	innerW := max(width-4, 20)
	a := d.Airship

	title := StylePanelTitle.Render("AIRSHIP DETAIL")
	escHint := StyleHelp.Render("[ESC]")
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(escHint))) + escHint
	sep := StyleAirshipDim.Render(strings.Repeat("-", innerW))
	lines := []string{titleLine, sep, ""}

	labelSty := lipgloss.NewStyle().Foreground(ColorMidGreen)
	valSty := lipgloss.NewStyle().Foreground(ColorMatrixGreen).Bold(true)

	ahead := "stationary"
	if p, ok := a.FurthestAheadCartesian(d.Params); ok {
		ahead = fmt.Sprintf("%.2f, %.2f km", p.X, p.Y)
	}
	closeTo := "-"
	if len(d.CloseTo) > 0 {
		closeTo = strings.Join(d.CloseTo, " ")
	}
	nose := a.NoseCartesian()

	fields := []struct{ label, value string }{
		{"ID", a.ID},
		{"Position", fmt.Sprintf("%.2f, %.2f km", a.Position.X, a.Position.Y)},
		{"Heading", fmt.Sprintf("%.0f° %s", float64(a.Heading.Normalize()), a.Heading.Compass())},
		{"Speed", fmt.Sprintf("%.0f km/h", a.Speed)},
		{"Size", fmt.Sprintf("%.0f x %.0f m", a.Length*1000, a.Width*1000)},
		{"Nose", fmt.Sprintf("%.2f, %.2f km", nose.X, nose.Y)},
		{"Ahead", ahead},
		{"Close to", closeTo},
	}
	for _, f := range fields {
		lines = append(lines, labelSty.Render(fmt.Sprintf("  %-10s", f.label))+valSty.Render(f.value))
	}
	lines = append(lines, "")

	if len(d.SpeedHistory) > 0 {
		lines = append(lines, labelSty.Render("  Speed History:"))
		spark := renderSparkline(d.SpeedHistory, max(innerW-4, 10))
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(ColorGreen).Render(spark))
		lines = append(lines, "")
	}

	dialH := max(height-len(lines)-4, 5)
	dialW := min(innerW, dialH*3) // keep roughly proportional
	if dial := RenderCompass(dialW, dialH, a.Heading, a.Speed/maxDialSpeed); dial != "" {
		prefix := strings.Repeat(" ", max((innerW-dialW)/2, 0))
		for _, l := range strings.Split(dial, "\n") {
			lines = append(lines, prefix+l)
		}
	}

	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	if len(lines) > height-2 {
		lines = lines[:max(height-2, 0)]
	}
	return StylePanelActive.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	chars := []byte{'_', '.', '-', '~', '^'}

	// Scale over the whole history, show only what fits
	minV, maxV := values[0], values[0]
	for _, v := range values {
		minV, maxV = min(minV, v), max(maxV, v)
	}
	rng := max(maxV-minV, 1)

	var sb strings.Builder
	for _, v := range values[max(len(values)-width, 0):] {
		idx := int((v - minV) / rng * float64(len(chars)-1))
		sb.WriteByte(chars[min(max(idx, 0), len(chars)-1)])
	}
	return sb.String()
}
