package ui

import (
	"errors"
	"strings"
	"testing"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/geometry"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func ships() []airship.Airship {
	return []airship.Airship{
		{ID: "LZ-127", Position: geometry.Cartesian{X: 1, Y: -2}, Heading: 90, Speed: 60, Width: 0.03, Length: 0.24},
		{ID: "R-100", Heading: 180, Width: 0.03, Length: 0.2},
	}
}

func TestAirshipListHeight(t *testing.T) {
	for _, h := range []int{6, 12, 30} {
		out := RenderAirshipList(ships(), nil, 30, h, 0)
		assert.Len(t, strings.Split(out, "\n"), h, "height %d", h)
	}
}

func TestAirshipListEntries(t *testing.T) {
	out := RenderAirshipList(ships(), map[string]bool{"R-100": true}, 40, 20, 0)
	assert.Contains(t, out, "AIRSHIPS [2]")
	assert.Contains(t, out, ">> LZ-127")
	assert.Contains(t, out, "R-100 [CLOSE]")
	assert.Contains(t, out, "090° E")

	empty := RenderAirshipList(nil, nil, 40, 10, 0)
	assert.Contains(t, empty, "Waiting for feed")
}

func TestAirshipListKeepsCursorVisible(t *testing.T) {
	var many []airship.Airship
	for _, id := range []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8"} {
		many = append(many, airship.Airship{ID: id})
	}
	out := RenderAirshipList(many, nil, 30, 12, 7) // room for two entries
	assert.Contains(t, out, ">> A8")
	assert.NotContains(t, out, "A1")
}

func TestTruncRaw(t *testing.T) {
	assert.Equal(t, "abc  ", truncRaw("abc", 5))
	assert.Equal(t, "ab", truncRaw("abc", 2))
	assert.Equal(t, "09°", truncRaw("09°x", 3))
}

func TestStatusBar(t *testing.T) {
	out := RenderStatusBar(120, Status{Airships: 3, ClosePairs: 1, Zoom: 1.25, CellPx: 8, Range: 4})
	assert.Contains(t, out, "[CLOSE x1]")
	assert.Contains(t, out, "Airships: 3")
	assert.Contains(t, out, "Zoom: x1.25")

	assert.Contains(t, RenderStatusBar(120, Status{}), "[LIVE]")
	assert.Contains(t, RenderStatusBar(120, Status{Err: errors.New("boom")}), "boom")
}

func TestMenuBar(t *testing.T) {
	out := RenderMenuBar(120, "demo", true, false)
	assert.Contains(t, out, "Feed: demo")
	assert.Contains(t, out, "[V]")
	assert.Equal(t, 120, lipgloss.Width(out))
}

func TestCompassArrow(t *testing.T) {
	for h, tip := range map[geometry.Degrees]string{0: "^", 90: ">", 180: "v", 270: "<"} {
		out := RenderCompass(21, 11, h, 1)
		assert.Contains(t, out, tip, "heading %v", h)
	}
	assert.Empty(t, RenderCompass(5, 3, 0, 1))

	still := RenderCompass(21, 11, 0, 0)
	assert.NotContains(t, still, "^", "no arrow when stationary")
}

func TestCompassGlyphs(t *testing.T) {
	assert.Equal(t, byte('/'), shaftChar(45))
	assert.Equal(t, byte('\\'), shaftChar(135))
	assert.Equal(t, byte('-'), shaftChar(270))
	assert.Equal(t, byte('\\'), dialChar(45))
	assert.Equal(t, byte('^'), arrowTip(-10))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", renderSparkline(nil, 10))
	assert.Equal(t, "_^", renderSparkline([]float64{0, 10}, 10))
	assert.Equal(t, "^", renderSparkline([]float64{0, 10}, 1), "only the last values fit")
	assert.Equal(t, "___", renderSparkline([]float64{5, 5, 5}, 10))
}

func TestDetailPanel(t *testing.T) {
	moving := Detail{Airship: ships()[0], Params: airship.DefaultParams(), SpeedHistory: []float64{50, 60}, CloseTo: []string{"R-100"}}
	out := RenderDetailPanel(moving, 60, 30)
	assert.Contains(t, out, "AIRSHIP DETAIL")
	assert.Contains(t, out, "LZ-127")
	assert.Contains(t, out, "6.00, -2.00 km", "lookahead point 5 km east")
	assert.Contains(t, out, "R-100")
	assert.Contains(t, out, "Speed History")
	assert.Len(t, strings.Split(out, "\n"), 30)

	still := RenderDetailPanel(Detail{Airship: ships()[1], Params: airship.DefaultParams()}, 60, 30)
	assert.Contains(t, still, "stationary")
}

func TestRadarInner(t *testing.T) {
	cols, rows := RadarInner(90, 38)
	assert.Equal(t, 86, cols)
	assert.Equal(t, 35, rows)
	cols, rows = RadarInner(2, 2)
	assert.Equal(t, 5, cols)
	assert.Equal(t, 3, rows)
}
