// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"falling-shapes/internal/config"
	"falling-shapes/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — круглая кнопка паузы в правом верхнем углу холста
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
	fillImg        *ebiten.Image
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &PauseButton{
		fillImg:    fillImg,
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	rectSize := b.Size * float32(utils.PulseScale(time.Since(b.LastClickTime).Seconds()))

	if b.IsPaused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-rectSize, b.Y-rectSize*1.2)
		path.LineTo(b.X-rectSize, b.Y+rectSize*1.2)
		path.LineTo(b.X+rectSize, b.Y)
		path.Close()
		fillPath(screen, b.fillImg, &path, b.PlayColor)
		return
	}

	// Два прямоугольника (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

// IsClicked проверяет попадание в круг радиуса Size*1.5 вокруг центра.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// TogglePause переключает состояние с учётом кулдауна. Возвращает false, если
// клик проигнорирован.
func (b *PauseButton) TogglePause(now time.Time) bool {
	if now.Sub(b.LastToggleTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.IsPaused = !b.IsPaused
	b.LastClickTime = now
	b.LastToggleTime = now
	return true
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

func fillPath(screen, fillImg *ebiten.Image, path *vector.Path, clr color.Color) {
	r, g, bl, a := clr.RGBA()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
