package shape

import (
	"fmt"
	"image/color"
	"math"

	"falling-shapes/internal/utils"
)

const (
	// MinSize and MaxSize bound the random size drawn per shape, [MinSize, MaxSize).
	MinSize = 30.0
	MaxSize = 60.0

	starPoints         = 10
	irregularMinPoints = 5
	irregularMaxPoints = 8
)

// Factory builds shapes. All randomness goes through rng so results are reproducible
// for a fixed seed.
type Factory struct {
	rng *utils.PRNGService
}

// NewFactory returns a factory drawing from rng.
func NewFactory(rng *utils.PRNGService) *Factory {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Factory{rng: rng}
}

// CreateShape generates the geometry for kind around a local origin and places the
// result at (x, y). The shape is interactive with a pointer cursor.
func (f *Factory) CreateShape(kind Kind, x, y float64, fill color.RGBA) (*Shape, error) {
	size := f.rng.Range(MinSize, MaxSize)

	var geom Geometry
	switch kind {
	case Triangle, Pentagon, Hexagon:
		geom = Geometry{Primitive: PrimitivePolygon, Points: RegularPolygon(kind.Sides(), size/2)}
	case Square:
		geom = Geometry{Primitive: PrimitiveRect, Width: size, Height: size}
	case Circle:
		geom = Geometry{Primitive: PrimitiveCircle, RadiusX: size / 2, RadiusY: size / 2}
	case Ellipse:
		geom = Geometry{Primitive: PrimitiveEllipse, RadiusX: size / 2, RadiusY: size / 3}
	case Star:
		geom = Geometry{Primitive: PrimitivePolygon, Points: StarPolygon(starPoints, size/2, size/4)}
	case Irregular:
		geom = Geometry{Primitive: PrimitivePolygon, Points: f.irregular(size)}
	default:
		return nil, fmt.Errorf("create shape: %w: %d", ErrUnknownKind, int(kind))
	}

	return &Shape{
		Kind:        kind,
		X:           x,
		Y:           y,
		Color:       fill,
		Size:        size,
		Geometry:    geom,
		Interactive: true,
		Cursor:      CursorPointer,
	}, nil
}

// RandomColor returns a uniformly random opaque 24-bit color.
func (f *Factory) RandomColor() color.RGBA {
	v := f.rng.Intn(0x1000000)
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// RandomKind picks uniformly from RandomKinds.
func (f *Factory) RandomKind() Kind {
	return RandomKinds[f.rng.Intn(len(RandomKinds))]
}

// RegularPolygon places sides vertices on a circle of the given radius, top vertex first.
func RegularPolygon(sides int, radius float64) []Point {
	pts := make([]Point, sides)
	for i := range pts {
		angle := float64(i)/float64(sides)*2*math.Pi - math.Pi/2
		pts[i] = Point{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius}
	}
	return pts
}

// StarPolygon alternates outer and inner radii, starting with an outer vertex at the top.
func StarPolygon(points int, outer, inner float64) []Point {
	pts := make([]Point, points)
	for i := range pts {
		r := inner
		if i%2 == 0 {
			r = outer
		}
		angle := float64(i)/float64(points)*2*math.Pi - math.Pi/2
		pts[i] = Point{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
	}
	return pts
}

// irregular builds a blob of 5..8 vertices, each pushed out to (size/2)*[0.5, 1).
func (f *Factory) irregular(size float64) []Point {
	n := irregularMinPoints + f.rng.Intn(irregularMaxPoints-irregularMinPoints+1)
	pts := make([]Point, n)
	for i := range pts {
		angle := float64(i) / float64(n) * 2 * math.Pi
		r := size / 2 * (0.5 + f.rng.Float64()*0.5)
		pts[i] = Point{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
	}
	return pts
}
