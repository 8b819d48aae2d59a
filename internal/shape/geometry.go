package shape

import "math"

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Area returns Width*Height.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Contains checks if a point is inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Primitive tells the renderer how Geometry is described.
type Primitive int

const (
	PrimitivePolygon Primitive = iota
	PrimitiveRect
	PrimitiveCircle
	PrimitiveEllipse
)

// Geometry is local to the shape origin (0,0).
type Geometry struct {
	Primitive Primitive

	// Points holds polygon vertices.
	Points []Point
	// Width and Height describe a centered rect.
	Width, Height float64
	// RadiusX and RadiusY describe a circle (equal radii) or an ellipse.
	RadiusX, RadiusY float64
}

// Bounds returns the local bounding box.
func (g Geometry) Bounds() Rect {
	switch g.Primitive {
	case PrimitiveRect:
		return Rect{X: -g.Width / 2, Y: -g.Height / 2, Width: g.Width, Height: g.Height}
	case PrimitiveCircle, PrimitiveEllipse:
		return Rect{X: -g.RadiusX, Y: -g.RadiusY, Width: 2 * g.RadiusX, Height: 2 * g.RadiusY}
	}
	if len(g.Points) == 0 {
		return Rect{}
	}
	minX, minY := g.Points[0].X, g.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range g.Points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains hit-tests a point given in local coordinates.
func (g Geometry) Contains(p Point) bool {
	switch g.Primitive {
	case PrimitiveRect:
		return math.Abs(p.X) <= g.Width/2 && math.Abs(p.Y) <= g.Height/2
	case PrimitiveCircle, PrimitiveEllipse:
		if g.RadiusX <= 0 || g.RadiusY <= 0 {
			return false
		}
		nx, ny := p.X/g.RadiusX, p.Y/g.RadiusY
		return nx*nx+ny*ny <= 1
	}
	return pointInPolygon(p, g.Points)
}

// Outline returns the closed outline as vertices. Curved primitives are sampled
// with the given number of segments.
func (g Geometry) Outline(segments int) []Point {
	switch g.Primitive {
	case PrimitiveRect:
		hw, hh := g.Width/2, g.Height/2
		return []Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	case PrimitiveCircle, PrimitiveEllipse:
		if segments < 3 {
			segments = 3
		}
		pts := make([]Point, segments)
		for i := range pts {
			a := float64(i) / float64(segments) * 2 * math.Pi
			pts[i] = Point{math.Cos(a) * g.RadiusX, math.Sin(a) * g.RadiusY}
		}
		return pts
	}
	return g.Points
}

// pointInPolygon is the even-odd rule, so concave irregular blobs and stars work.
func pointInPolygon(p Point, poly []Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
