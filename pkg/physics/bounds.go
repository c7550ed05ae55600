// pkg/physics/bounds.go
package physics

// Bounds is the axis-aligned rectangle particles are kept inside.
type Bounds struct {
	Min Vector2D
	Max Vector2D
}

// NewBounds creates bounds from explicit corners.
func NewBounds(min, max Vector2D) Bounds {
	return Bounds{Min: min, Max: max}
}

// BoundsFromViewport derives world bounds from viewport dimensions,
// inset by padding on every edge.
func BoundsFromViewport(width, height, padding float64) Bounds {
	return Bounds{
		Min: Vector2D{X: padding, Y: padding},
		Max: Vector2D{X: width - padding, Y: height - padding},
	}
}

// Contains reports whether the point lies inside the bounds.
func (b Bounds) Contains(point Vector2D) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}
