package shape

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"falling-shapes/internal/utils"
)

const eps = 1e-9

func newTestFactory() *Factory {
	return NewFactory(utils.NewPRNGService(7))
}

func TestCreateShapeVertexCounts(t *testing.T) {
	tests := []struct {
		kind     Kind
		min, max int
	}{
		{Triangle, 3, 3},
		{Pentagon, 5, 5},
		{Hexagon, 6, 6},
		{Star, 10, 10},
		{Irregular, 5, 8},
	}

	f := newTestFactory()
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				s, err := f.CreateShape(tt.kind, 0, 0, color.RGBA{A: 255})
				if err != nil {
					t.Fatalf("CreateShape(%v): %v", tt.kind, err)
				}
				if s.Geometry.Primitive != PrimitivePolygon {
					t.Fatalf("primitive = %v, want polygon", s.Geometry.Primitive)
				}
				if n := len(s.Geometry.Points); n < tt.min || n > tt.max {
					t.Fatalf("vertex count = %d, want [%d, %d]", n, tt.min, tt.max)
				}
			}
		})
	}
}

func TestIrregularCoversAllVertexCounts(t *testing.T) {
	f := newTestFactory()
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		s, _ := f.CreateShape(Irregular, 0, 0, color.RGBA{})
		seen[len(s.Geometry.Points)] = true
	}
	for n := 5; n <= 8; n++ {
		if !seen[n] {
			t.Errorf("irregular never produced %d vertices", n)
		}
	}
}

func TestRegularPolygonVertices(t *testing.T) {
	f := newTestFactory()
	for _, kind := range []Kind{Triangle, Pentagon, Hexagon} {
		s, err := f.CreateShape(kind, 100, 200, color.RGBA{})
		if err != nil {
			t.Fatal(err)
		}
		sides := kind.Sides()
		for i, p := range s.Geometry.Points {
			if r := math.Hypot(p.X, p.Y); math.Abs(r-s.Size/2) > eps {
				t.Errorf("%v vertex %d radius = %v, want %v", kind, i, r, s.Size/2)
			}
			want := float64(i)/float64(sides)*2*math.Pi - math.Pi/2
			got := math.Atan2(p.Y, p.X)
			if d := math.Remainder(got-want, 2*math.Pi); math.Abs(d) > 1e-9 {
				t.Errorf("%v vertex %d angle = %v, want %v", kind, i, got, want)
			}
		}
		// top vertex first
		if p := s.Geometry.Points[0]; math.Abs(p.X) > eps || math.Abs(p.Y+s.Size/2) > eps {
			t.Errorf("%v first vertex = %+v, want (0, -%v)", kind, p, s.Size/2)
		}
	}
}

func TestStarAlternatesRadii(t *testing.T) {
	s, err := newTestFactory().CreateShape(Star, 0, 0, color.RGBA{})
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range s.Geometry.Points {
		want := s.Size / 4
		if i%2 == 0 {
			want = s.Size / 2
		}
		if r := math.Hypot(p.X, p.Y); math.Abs(r-want) > eps {
			t.Errorf("vertex %d radius = %v, want %v", i, r, want)
		}
	}
}

func TestIrregularRadiiInRange(t *testing.T) {
	f := newTestFactory()
	for i := 0; i < 100; i++ {
		s, _ := f.CreateShape(Irregular, 0, 0, color.RGBA{})
		n := len(s.Geometry.Points)
		for j, p := range s.Geometry.Points {
			r := math.Hypot(p.X, p.Y)
			if r < 0.25*s.Size-eps || r > 0.5*s.Size+eps {
				t.Fatalf("vertex radius %v outside [%v, %v]", r, 0.25*s.Size, 0.5*s.Size)
			}
			want := float64(j) / float64(n) * 2 * math.Pi
			if d := math.Remainder(math.Atan2(p.Y, p.X)-want, 2*math.Pi); math.Abs(d) > 1e-9 {
				t.Fatalf("vertex %d not at evenly spaced angle", j)
			}
		}
	}
}

func TestPrimitiveKinds(t *testing.T) {
	f := newTestFactory()

	sq, _ := f.CreateShape(Square, 10, 20, color.RGBA{})
	if sq.Geometry.Primitive != PrimitiveRect || sq.Geometry.Width != sq.Size || sq.Geometry.Height != sq.Size {
		t.Errorf("square geometry = %+v, want rect %vx%v", sq.Geometry, sq.Size, sq.Size)
	}
	b := sq.Bounds()
	if math.Abs(b.X-(10-sq.Size/2)) > eps || math.Abs(b.Y-(20-sq.Size/2)) > eps {
		t.Errorf("square bounds = %+v, want centered on (10, 20)", b)
	}

	c, _ := f.CreateShape(Circle, 0, 0, color.RGBA{})
	if c.Geometry.RadiusX != c.Size/2 || c.Geometry.RadiusY != c.Size/2 {
		t.Errorf("circle radii = %v/%v, want %v", c.Geometry.RadiusX, c.Geometry.RadiusY, c.Size/2)
	}

	e, _ := f.CreateShape(Ellipse, 0, 0, color.RGBA{})
	if e.Geometry.RadiusX != e.Size/2 || e.Geometry.RadiusY != e.Size/3 {
		t.Errorf("ellipse radii = %v/%v, want %v/%v", e.Geometry.RadiusX, e.Geometry.RadiusY, e.Size/2, e.Size/3)
	}
	if got, want := e.Bounds().Area(), e.Size*e.Size*2/3; math.Abs(got-want) > 1e-6 {
		t.Errorf("ellipse bounds area = %v, want %v", got, want)
	}
}

func TestCreateShapeCommonFields(t *testing.T) {
	f := newTestFactory()
	fill := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	for k := Kind(0); k < kindCount; k++ {
		s, err := f.CreateShape(k, 12, -50, fill)
		if err != nil {
			t.Fatalf("CreateShape(%v): %v", k, err)
		}
		if s.X != 12 || s.Y != -50 {
			t.Errorf("%v position = (%v, %v), want (12, -50)", k, s.X, s.Y)
		}
		if s.Color != fill || s.Kind != k {
			t.Errorf("%v color/kind not carried over", k)
		}
		if !s.Interactive || s.Cursor != CursorPointer {
			t.Errorf("%v should be interactive with a pointer cursor", k)
		}
		if s.Size < MinSize || s.Size >= MaxSize {
			t.Errorf("%v size = %v, want [%v, %v)", k, s.Size, MinSize, MaxSize)
		}
	}
}

func TestCreateShapeUnknownKind(t *testing.T) {
	f := newTestFactory()
	for _, k := range []Kind{-1, kindCount, 42} {
		s, err := f.CreateShape(k, 0, 0, color.RGBA{})
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("CreateShape(%d) error = %v, want ErrUnknownKind", int(k), err)
		}
		if s != nil {
			t.Errorf("CreateShape(%d) returned a shape", int(k))
		}
	}
}

func TestRandomKindExcludesIrregular(t *testing.T) {
	f := newTestFactory()
	counts := map[Kind]int{}
	for i := 0; i < 2000; i++ {
		counts[f.RandomKind()]++
	}
	if counts[Irregular] != 0 {
		t.Fatalf("RandomKind returned Irregular %d times", counts[Irregular])
	}
	for _, k := range RandomKinds {
		if counts[k] == 0 {
			t.Errorf("RandomKind never returned %v", k)
		}
	}
}

func TestRandomColorOpaque(t *testing.T) {
	f := newTestFactory()
	distinct := map[color.RGBA]bool{}
	for i := 0; i < 100; i++ {
		c := f.RandomColor()
		if c.A != 0xff {
			t.Fatalf("alpha = %d, want 255", c.A)
		}
		distinct[c] = true
	}
	if len(distinct) < 90 {
		t.Errorf("only %d distinct colors out of 100", len(distinct))
	}
}
