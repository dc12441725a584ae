package radar

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/config"
	"flight-radar.klederson.com/internal/geometry"
	"flight-radar.klederson.com/internal/scene"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op   string
	kind int
	text string
}

// recorder is a Surface that remembers what it was asked to draw.
type recorder struct {
	calls []call
}

func (r *recorder) Line(_, _ geometry.PixelCoordinate, s Stroke) {
	r.calls = append(r.calls, call{op: "line", kind: int(s)})
}

func (r *recorder) Circle(_ geometry.PixelCoordinate, _ geometry.Pixel, s Stroke) {
	r.calls = append(r.calls, call{op: "circle", kind: int(s)})
}

func (r *recorder) FillPolygon(_ geometry.PixelPolygon, f Fill) {
	r.calls = append(r.calls, call{op: "fill", kind: int(f)})
}

func (r *recorder) Text(_ geometry.PixelCoordinate, text string, s Stroke) {
	r.calls = append(r.calls, call{op: "text", kind: int(s), text: text})
}

func (r *recorder) Marker(_ geometry.PixelCoordinate, _ geometry.Radians, _, _ geometry.Pixel, m Mark) {
	r.calls = append(r.calls, call{op: "marker", kind: int(m)})
}

func (r *recorder) last(op string) int {
	idx := -1
	for i, c := range r.calls {
		if c.op == op {
			idx = i
		}
	}
	return idx
}

func (r *recorder) first(op string, kind int) int {
	for i, c := range r.calls {
		if c.op == op && c.kind == kind {
			return i
		}
	}
	return -1
}

func buildScene(t *testing.T, ships ...airship.Airship) scene.Scene {
	t.Helper()
	cfg := config.Default()
	a, err := airship.NewAirships(ships...)
	require.NoError(t, err)
	f, err := scene.NewFrame(cfg, 400, 400, a, scene.DefaultView(cfg))
	require.NoError(t, err)
	s, err := scene.Build(context.Background(), f, 2)
	require.NoError(t, err)
	return s
}

func TestDrawOrder(t *testing.T) {
	s := buildScene(t,
		airship.Airship{ID: "ZP-1", Speed: 40, Heading: 45, Width: 0.05, Length: 0.2},
		airship.Airship{ID: "ZP-2", Position: geometry.Cartesian{X: 0.5}, Width: 0.05, Length: 0.2},
	)
	rec := &recorder{}
	Draw(rec, s)

	assert.Equal(t, 2, countOps(rec, "fill", int(FillLeftCone)))
	assert.Equal(t, 2, countOps(rec, "fill", int(FillRightCone)))
	assert.Equal(t, len(s.RingRadii), countOps(rec, "circle", int(StrokeRing)))
	assert.Equal(t, 1, countOps(rec, "line", int(StrokeGuide)), "stationary ZP-2 has no guideline")
	assert.Equal(t, 2, countOps(rec, "marker", int(MarkAirshipClose)), "ships 0.5 km apart are close")

	assert.Less(t, rec.last("circle"), rec.first("fill", int(FillLeftCone)), "rings under cones")
	assert.Less(t, rec.last("fill"), rec.first("marker", int(MarkShadow)), "cones under shadows")
	assert.Less(t, rec.first("line", int(StrokeGuide)), rec.first("marker", int(MarkAirshipClose)), "guidelines under airships")
	assert.Equal(t, "marker", rec.calls[len(rec.calls)-1].op, "an airship is drawn last")
}

func countOps(r *recorder, op string, kind int) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op && c.kind == kind {
			n++
		}
	}
	return n
}

func TestDrawLabelsAndScale(t *testing.T) {
	s := buildScene(t, airship.Airship{ID: "HB-42", Width: 0.05, Length: 0.2})
	rec := &recorder{}
	Draw(rec, s)

	var texts []string
	for _, c := range rec.calls {
		if c.op == "text" {
			texts = append(texts, c.text)
		}
	}
	assert.Equal(t, []string{config.ScaleText, config.ScaleText, "HB-42"}, texts)
}

func TestCanvasLines(t *testing.T) {
	c := NewCanvas(10, 5)
	w, h := c.PixelSize()
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 10.0, h, "rows are two pixels tall")

	c.Line(geometry.MustPixelCoordinate(0, 0), geometry.MustPixelCoordinate(9, 0), StrokeGrid)
	c.Line(geometry.MustPixelCoordinate(3, 2), geometry.MustPixelCoordinate(3, 9.8), StrokeGrid)

	rows := strings.Split(c.Plain(), "\n")
	require.Len(t, rows, 5)
	assert.Equal(t, "----------", rows[0])
	for _, r := range rows[1:] {
		assert.Equal(t, '|', rune(r[3]), r)
	}
}

func TestCanvasClipsOutside(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Line(geometry.MustPixelCoordinate(-50, -50), geometry.MustPixelCoordinate(-10, -10), StrokeRing)
	c.Text(geometry.MustPixelCoordinate(2, 0), "ABCDEF", StrokeLabel)
	assert.Equal(t, "  AB\n    ", c.Plain())
}

func TestCanvasMarkerPointsAlongHeading(t *testing.T) {
	for h, want := range map[geometry.Degrees]rune{0: '^', 90: '>', 180: 'v', 270: '<'} {
		c := NewCanvas(3, 2)
		c.Marker(geometry.MustPixelCoordinate(1, 0), h.Rotation(), geometry.MustPixel(1), geometry.MustPixel(1), MarkAirship)
		assert.Equal(t, want, []rune(c.Plain())[1], "heading %v", h)
	}
}

func TestCanvasFillKeepsGlyphs(t *testing.T) {
	c := NewCanvas(6, 3)
	c.Text(geometry.MustPixelCoordinate(2, 2), "X", StrokeLabel)
	tri, err := geometry.NewPixelPolygon(
		geometry.MustPixelCoordinate(-1, -1),
		geometry.MustPixelCoordinate(8, -1),
		geometry.MustPixelCoordinate(-1, 8),
	)
	require.NoError(t, err)
	c.FillPolygon(tri, FillLeftCone)

	assert.Equal(t, 'X', []rune(strings.Split(c.Plain(), "\n")[1])[2])
	assert.Equal(t, colorLeft, c.cells[0].bg)
	assert.Empty(t, c.cells[len(c.cells)-1].bg, "bottom right is outside")
}

func TestRingChar(t *testing.T) {
	assert.Equal(t, '-', ringChar(0))
	assert.Equal(t, '\\', ringChar(math.Pi/4), "north-east")
	assert.Equal(t, '|', ringChar(math.Pi/2))
	assert.Equal(t, '/', ringChar(-math.Pi/4), "north-west")
}

func TestRender(t *testing.T) {
	cfg := config.Default()
	ships, err := airship.NewAirships(airship.Airship{ID: "ZP-7", Speed: 30, Heading: 90, Width: 0.05, Length: 0.2})
	require.NoError(t, err)

	out, s, err := Render(context.Background(), cfg, 60, 20, ships, scene.DefaultView(cfg), nil)
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 20)
	assert.Equal(t, 60, lipgloss.Width(lines[0]))
	assert.Len(t, s.Sprites, 1)
	assert.Equal(t, 60.0, s.Width)

	out, _, err = Render(context.Background(), cfg, 4, 4, ships, scene.DefaultView(cfg), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPlotSurfaceSave(t *testing.T) {
	s := buildScene(t,
		airship.Airship{ID: "ZP-1", Speed: 40, Heading: 45, Width: 0.05, Length: 0.2},
		airship.Airship{ID: "ZP-2", Position: geometry.Cartesian{X: -2, Y: 1}, Heading: 200, Speed: 10, Width: 0.05, Length: 0.2},
	)
	ps := NewPlotSurface(s.Width, s.Height)
	Draw(ps, s)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, ps.Save(path, 300, 300))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRenderLegend(t *testing.T) {
	l := RenderLegend(80)
	assert.Contains(t, l, "airship")
	assert.Contains(t, l, "vision")
}
