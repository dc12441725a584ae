package scene

import (
	"context"
	"fmt"
	"slices"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/geometry"
	"golang.org/x/sync/errgroup"
)

// liftFactor is how far an airship body floats above its ground shadow,
// in sprite heights.
const liftFactor = 1.5

// Sprite is the projected geometry of one airship, ready to draw.
type Sprite struct {
	ID      string
	Heading geometry.Degrees
	Speed   float64

	Shadow   geometry.PixelCoordinate // ground position
	Body     geometry.PixelCoordinate // sprite center, lifted above the shadow
	Label    geometry.PixelCoordinate
	Nose     geometry.PixelCoordinate
	Rotation geometry.Radians
	Width    geometry.Pixel
	Height   geometry.Pixel

	// Nil when the airship is stationary or guidelines are hidden.
	Guideline *geometry.PixelSegment
	// Nil when vision cones are hidden.
	LeftCone, RightCone *geometry.PixelPolygon

	Close bool // part of at least one proximity pair
}

// Scene is a fully projected frame. Drawing a Scene needs no coordinate math.
type Scene struct {
	Width, Height float64
	GridX, GridY  []geometry.Pixel
	Rings         geometry.Rings
	RingRadii     []geometry.Pixel
	ScaleBars     []ScaleBar
	Sprites       []Sprite
	ClosePairs    []airship.Pair
}

// Build projects f. Airships are projected concurrently on up to workers
// goroutines; Sprites keep collection order.
func Build(ctx context.Context, f Frame, workers int) (Scene, error) {
	return BuildCached(ctx, f, workers, nil)
}

// BuildCached is Build reusing projections from c where the airship, grid
// and view are unchanged since an earlier frame.
func BuildCached(ctx context.Context, f Frame, workers int, c *SpriteCache) (Scene, error) {
	workers = max(workers, 1)

	pairs, err := Proximity(ctx, f.Airships, f.Proximity, workers)
	if err != nil {
		return Scene{}, err
	}
	closeIDs := make(map[string]bool, 2*len(pairs))
	for _, p := range pairs {
		closeIDs[p.A.ID] = true
		closeIDs[p.B.ID] = true
	}

	sprites := make([]Sprite, f.Airships.Len())
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range sprites {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a := f.Airships.At(i)
			sp, err := c.project(f, a)
			if err != nil {
				return err
			}
			sp.Close = closeIDs[a.ID]
			sprites[i] = sp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Scene{}, err
	}

	bars, err := f.ScaleBars()
	if err != nil {
		return Scene{}, err
	}
	xs, ys := f.GridLines()
	return Scene{
		Width:      f.Width,
		Height:     f.Height,
		GridX:      xs,
		GridY:      ys,
		Rings:      f.Rings,
		RingRadii:  f.Rings.Radii(),
		ScaleBars:  bars,
		Sprites:    sprites,
		ClosePairs: pairs,
	}, nil
}

func project(f Frame, a airship.Airship) (Sprite, error) {
	w, err := spriteLength(f, a.Width)
	if err != nil {
		return Sprite{}, fmt.Errorf("airship %s width: %w", a.ID, err)
	}
	h, err := spriteLength(f, a.Length)
	if err != nil {
		return Sprite{}, fmt.Errorf("airship %s length: %w", a.ID, err)
	}

	shadow, err := f.Grid.ToPixel(a.Position)
	if err != nil {
		return Sprite{}, fmt.Errorf("airship %s position: %w", a.ID, err)
	}
	nose, err := f.Grid.ToPixel(a.NoseCartesian())
	if err != nil {
		return Sprite{}, fmt.Errorf("airship %s nose: %w", a.ID, err)
	}
	body := shadow.Offset(0, -liftFactor*h.Value())

	s := Sprite{
		ID:       a.ID,
		Heading:  a.Heading,
		Speed:    a.Speed,
		Shadow:   shadow,
		Body:     body,
		Label:    body.Offset(w.Half().Value()+1, -h.Half().Value()-1),
		Nose:     nose,
		Rotation: a.Heading.Rotation(),
		Width:    w,
		Height:   h,
	}

	if f.View.ShowGuidelines {
		if seg, ok := a.Guideline(f.Params); ok {
			px, err := f.Grid.ToPixelSegment(seg)
			if err != nil {
				return Sprite{}, fmt.Errorf("airship %s guideline: %w", a.ID, err)
			}
			s.Guideline = &px
		}
	}
	if f.View.ShowVision {
		left, err := f.Grid.ToPixels(a.LeftVisionPolygon(f.Params))
		if err != nil {
			return Sprite{}, fmt.Errorf("airship %s left cone: %w", a.ID, err)
		}
		right, err := f.Grid.ToPixels(a.RightVisionPolygon(f.Params))
		if err != nil {
			return Sprite{}, fmt.Errorf("airship %s right cone: %w", a.ID, err)
		}
		s.LeftCone, s.RightCone = &left, &right
	}
	return s, nil
}

// spriteLength is a Cartesian length in pixels at the view's sprite scale.
func spriteLength(f Frame, km float64) (geometry.Pixel, error) {
	p, err := f.Grid.PixelLength(km)
	if err != nil {
		return geometry.Pixel{}, err
	}
	return p.Scale(f.View.SpriteScale)
}

// Proximity returns the pairs whose separation is below within, in
// Pairs order. Pair partitions are scanned concurrently. This is purely
// geometric: no pair is judged to be in conflict.
func Proximity(ctx context.Context, ships *airship.Airships, within float64, workers int) ([]airship.Pair, error) {
	if within <= 0 {
		return nil, nil
	}
	parts := ships.SplitPairs(max(workers, 1))
	found := make([][]airship.Pair, len(parts))

	g, ctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		g.Go(func() error {
			for p := range part {
				if err := ctx.Err(); err != nil {
					return err
				}
				if p.Separation() < within {
					found[i] = append(found[i], p)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(found...), nil
}
