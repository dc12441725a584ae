package scene

import (
	"flight-radar.klederson.com/internal/config"
	"golang.org/x/exp/constraints"
)

// View holds the user-controlled display settings. A View is a value:
// changing a setting returns a new View that takes effect on the next frame.
type View struct {
	Zoom           float64
	SpriteScale    float64
	ShowVision     bool
	ShowGuidelines bool
}

// DefaultView returns the startup view for cfg.
func DefaultView(cfg *config.Config) View {
	return View{
		Zoom:           cfg.Zoom.Initial,
		SpriteScale:    cfg.Display.SpriteScale,
		ShowVision:     true,
		ShowGuidelines: true,
	}
}

func (v View) ZoomIn(cfg *config.Config) View {
	v.Zoom = clamp(v.Zoom*cfg.Zoom.Step, cfg.Zoom.Min, cfg.Zoom.Max)
	return v
}

func (v View) ZoomOut(cfg *config.Config) View {
	v.Zoom = clamp(v.Zoom/cfg.Zoom.Step, cfg.Zoom.Min, cfg.Zoom.Max)
	return v
}

// Sprite scale is bounded to [1,16].
func (v View) GrowSprites() View {
	v.SpriteScale = clamp(v.SpriteScale+1, 1, 16)
	return v
}

func (v View) ShrinkSprites() View {
	v.SpriteScale = clamp(v.SpriteScale-1, 1, 16)
	return v
}

func (v View) ToggleVision() View {
	v.ShowVision = !v.ShowVision
	return v
}

func (v View) ToggleGuidelines() View {
	v.ShowGuidelines = !v.ShowGuidelines
	return v
}

func clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}
