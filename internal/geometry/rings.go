package geometry

import "fmt"

// Rings are concentric distance rings drawn around a pixel center.
type Rings struct {
	Center    PixelCoordinate
	Radius    Pixel
	Amount    int
	LineWidth Pixel
}

// NewRings validates and returns a ring set.
func NewRings(center PixelCoordinate, radius Pixel, amount int, lineWidth Pixel) (Rings, error) {
	if amount < 1 {
		return Rings{}, fmt.Errorf("geometry: ring amount %d must be at least 1", amount)
	}
	if radius.value <= 0 {
		return Rings{}, fmt.Errorf("%w: ring radius %v", ErrDegenerateGrid, radius)
	}
	if lineWidth.value < 0 {
		return Rings{}, fmt.Errorf("geometry: negative ring line width %v", lineWidth)
	}
	return Rings{Center: center, Radius: radius, Amount: amount, LineWidth: lineWidth}, nil
}

// Radii returns the ring radii from the innermost out. The outermost ring
// is inset by half the line width so its stroke stays inside Radius.
func (r Rings) Radii() []Pixel {
	step := (r.Radius.value - r.LineWidth.value/2) / float64(r.Amount)
	radii := make([]Pixel, r.Amount)
	for i := range radii {
		radii[i] = Pixel{value: round(step * float64(i+1))}
	}
	return radii
}
