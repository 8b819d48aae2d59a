// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"time"

	"falling-shapes/internal/config"
	"falling-shapes/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Label         string
	BgColor       color.RGBA
	HoverColor    color.RGBA
	TextColor     color.RGBA
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Label:      label,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		TextColor:  config.TextLightColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Press запоминает момент клика для анимации. Возвращает false, если
// кнопка ещё в кулдауне.
func (b *Button) Press(now time.Time) bool {
	if now.Sub(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = now
	return true
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}

	scale := float32(utils.PulseScale(time.Since(b.LastClickTime).Seconds()))
	w := float32(b.Rect.Dx()) * scale
	h := float32(b.Rect.Dy()) * scale
	cx := float32(b.Rect.Min.X) + float32(b.Rect.Dx())/2
	cy := float32(b.Rect.Min.Y) + float32(b.Rect.Dy())/2

	vector.DrawFilledRect(screen, cx-w/2, cy-h/2, w, h, bg, true)
	vector.StrokeRect(screen, cx-w/2, cy-h/2, w, h, 1.5, config.ButtonStroke, true)

	bounds := text.BoundString(face, b.Label)
	tx := int(cx) - bounds.Dx()/2 - bounds.Min.X
	ty := int(cy) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, b.Label, face, tx, ty, b.TextColor)
}
