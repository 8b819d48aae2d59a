package shape

import (
	"image/color"

	"falling-shapes/internal/scene"
)

// Cursor is the pointer hint shown while hovering a shape.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

// Shape is a filled polygon positioned at (X, Y). Geometry never changes after
// creation; only the position moves.
type Shape struct {
	scene.Node

	Kind        Kind
	X, Y        float64
	Color       color.RGBA
	Size        float64
	Geometry    Geometry
	Interactive bool
	Cursor      Cursor
}

// Bounds returns the bounding box in canvas coordinates.
func (s *Shape) Bounds() Rect {
	b := s.Geometry.Bounds()
	b.X += s.X
	b.Y += s.Y
	return b
}

// Contains hit-tests a point in canvas coordinates.
func (s *Shape) Contains(x, y float64) bool {
	if !s.Bounds().Contains(x, y) {
		return false
	}
	return s.Geometry.Contains(Point{X: x - s.X, Y: y - s.Y})
}
