package radar

import (
	"context"
	"strings"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/config"
	"flight-radar.klederson.com/internal/scene"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleLegShip  = lipgloss.NewStyle().Foreground(colorShip)
	styleLegClose = lipgloss.NewStyle().Foreground(colorClose)
	styleLegLeft  = lipgloss.NewStyle().Background(colorLeft)
	styleLegRight = lipgloss.NewStyle().Background(colorRight)
	styleLegGuide = lipgloss.NewStyle().Foreground(colorGuide)
)

// Render lays out, projects and rasterizes one frame onto a cols x rows
// terminal canvas. The built scene is returned alongside the text so that
// callers can report on it without projecting twice. cache may be nil.
func Render(ctx context.Context, cfg *config.Config, cols, rows int, ships *airship.Airships, v scene.View, cache *scene.SpriteCache) (string, scene.Scene, error) {
	if cols < 10 || rows < 5 {
		return "", scene.Scene{}, nil
	}

	c := NewCanvas(cols, rows)
	w, h := c.PixelSize()
	f, err := scene.NewFrame(cfg, w, h, ships, v)
	if err != nil {
		return "", scene.Scene{}, err
	}
	s, err := scene.BuildCached(ctx, f, config.RenderWorkers, cache)
	if err != nil {
		return "", scene.Scene{}, err
	}
	Draw(c, s)
	return c.String(), s, nil
}

// RenderLegend produces the radar legend line.
func RenderLegend(width int) string {
	legend := "   " +
		styleLegShip.Render("^ airship") +
		"  " +
		styleLegClose.Render("^ close") +
		"  " +
		styleLegLeft.Render(" L ") +
		styleLegRight.Render(" R ") +
		" vision  " +
		styleLegGuide.Render("- - guideline")

	pad := max((width-lipgloss.Width(legend))/2, 0)
	return strings.Repeat(" ", pad) + legend
}
