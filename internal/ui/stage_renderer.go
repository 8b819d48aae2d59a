// internal/ui/stage_renderer.go
package ui

import (
	"image/color"

	"falling-shapes/internal/config"
	"falling-shapes/internal/scene"
	"falling-shapes/internal/shape"
	"falling-shapes/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StageRenderer рисует фигуры со сцены
type StageRenderer struct {
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func NewStageRenderer() *StageRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &StageRenderer{
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 64),
		fillIs:   make([]uint16, 0, 64),
		strokeVs: make([]ebiten.Vertex, 0, 128),
		strokeIs: make([]uint16, 0, 128),
	}
}

// Draw рисует детей контейнера в порядке добавления, обрезая по маске.
func (s *StageRenderer) Draw(screen *ebiten.Image, stage *scene.Container) {
	target := screen
	if !stage.Mask.Empty() {
		target = screen.SubImage(stage.Mask).(*ebiten.Image)
	}
	for _, child := range stage.Children() {
		if sh, ok := child.(*shape.Shape); ok && !sh.Destroyed() {
			s.drawShape(target, sh)
		}
	}
}

func (s *StageRenderer) drawShape(target *ebiten.Image, sh *shape.Shape) {
	outline := sh.Geometry.Outline(config.CircleSegments)
	if len(outline) < 3 {
		return
	}

	path := vector.Path{}
	for i, p := range outline {
		x, y := float32(sh.X+p.X), float32(sh.Y+p.Y)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
	paint(s.fillVs, sh.Color)
	target.DrawTriangles(s.fillVs, s.fillIs, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	s.strokeVs, s.strokeIs = path.AppendVerticesAndIndicesForStroke(s.strokeVs[:0], s.strokeIs[:0], &vector.StrokeOptions{
		Width:    config.ShapeOutlineWidth,
		LineJoin: vector.LineJoinRound,
	})
	paint(s.strokeVs, render.DarkenColor(sh.Color))
	target.DrawTriangles(s.strokeVs, s.strokeIs, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
