package terminal

import (
	"image/color"
	"math"

	"falling-shapes/internal/scene"
	"falling-shapes/internal/shape"
)

// Frame is the stage rasterised onto a grid of terminal cells. A cell is
// painted by the topmost shape covering its center.
type Frame struct {
	Cols, Rows int
	Cells      []color.RGBA
	Filled     []bool
}

// At returns the color of cell (c, r) and whether any shape covers it.
func (f *Frame) At(c, r int) (color.RGBA, bool) {
	if c < 0 || r < 0 || c >= f.Cols || r >= f.Rows {
		return color.RGBA{}, false
	}
	i := r*f.Cols + c
	return f.Cells[i], f.Filled[i]
}

// Rasterize samples every shape on stage at cell centers. canvasW and canvasH are
// the canvas size the grid stretches over.
func Rasterize(stage *scene.Container, cols, rows int, canvasW, canvasH float64) *Frame {
	f := &Frame{
		Cols:   cols,
		Rows:   rows,
		Cells:  make([]color.RGBA, cols*rows),
		Filled: make([]bool, cols*rows),
	}
	if cols <= 0 || rows <= 0 {
		return f
	}
	cellW := canvasW / float64(cols)
	cellH := canvasH / float64(rows)

	for _, child := range stage.Children() {
		sh, ok := child.(*shape.Shape)
		if !ok || sh.Destroyed() {
			continue
		}
		b := sh.Bounds()
		c0 := clampInt(int(math.Floor(b.X/cellW)), 0, cols-1)
		c1 := clampInt(int(math.Ceil((b.X+b.Width)/cellW)), 0, cols-1)
		r0 := clampInt(int(math.Floor(b.Y/cellH)), 0, rows-1)
		r1 := clampInt(int(math.Ceil((b.Y+b.Height)/cellH)), 0, rows-1)
		if b.X+b.Width < 0 || b.Y+b.Height < 0 || b.X > canvasW || b.Y > canvasH {
			continue
		}
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				if sh.Contains((float64(c)+0.5)*cellW, (float64(r)+0.5)*cellH) {
					i := r*cols + c
					f.Cells[i] = sh.Color
					f.Filled[i] = true
				}
			}
		}
	}
	return f
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
