package ui

import (
	"fmt"
	"image"
	"time"

	"falling-shapes/internal/app"
	"falling-shapes/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// controlButton связывает кнопку с действием над настройками.
type controlButton struct {
	*Button
	action app.ControlAction
}

// ControlPanel — полоса под холстом: две группы кнопок (скорость появления,
// гравитация) со значениями и статистика справа.
type ControlPanel struct {
	Top     int
	face    font.Face
	buttons []controlButton

	spawnValueX   int
	gravityValueX int
}

// NewControlPanel раскладывает кнопки в полосе, начинающейся с y = top.
func NewControlPanel(top int, face font.Face) *ControlPanel {
	p := &ControlPanel{Top: top, face: face}

	y := top + (config.PanelHeight-config.ButtonHeight)/2
	x := 16
	add := func(label string, action app.ControlAction) {
		rect := image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
		p.buttons = append(p.buttons, controlButton{Button: NewButton(rect, label), action: action})
		x += config.ButtonWidth + config.ButtonSpacing
	}

	add("-", app.DecreaseSpawnRate)
	p.spawnValueX = x
	x += 110
	add("+", app.IncreaseSpawnRate)
	x += 24
	add("-", app.DecreaseGravity)
	p.gravityValueX = x
	x += 110
	add("+", app.IncreaseGravity)
	return p
}

// HandleClick применяет действие кнопки под курсором. Возвращает true, если
// клик пришёлся на панель.
func (p *ControlPanel) HandleClick(x, y int, game *app.Game, now time.Time) bool {
	if y < p.Top {
		return false
	}
	for _, b := range p.buttons {
		if b.Contains(x, y) && b.Press(now) {
			game.Apply(b.action)
			break
		}
	}
	return true
}

// Draw рисует панель, значения настроек и статистику.
func (p *ControlPanel) Draw(screen *ebiten.Image, game *app.Game) {
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, float32(p.Top), w, config.PanelHeight, config.PanelColor, false)
	vector.StrokeLine(screen, 0, float32(p.Top), w, float32(p.Top), 1, config.TextDimColor, false)

	mx, my := ebiten.CursorPosition()
	for _, b := range p.buttons {
		b.Draw(screen, p.face, b.Contains(mx, my))
	}

	baseline := p.Top + config.PanelHeight/2 + config.FontSize/3
	text.Draw(screen, fmt.Sprintf("%s shapes/s", game.Settings.SpawnRateLabel()), p.face, p.spawnValueX+6, baseline, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("gravity %s", game.Settings.GravityLabel()), p.face, p.gravityValueX+6, baseline, config.TextLightColor)

	stats := game.Stats()
	label := fmt.Sprintf("Shapes: %d   Area: %d px²", stats.Count, stats.Area)
	bounds := text.BoundString(p.face, label)
	text.Draw(screen, label, p.face, screen.Bounds().Dx()-bounds.Dx()-16, baseline, config.TextLightColor)
}
