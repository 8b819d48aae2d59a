// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"falling-shapes/internal/event"
	"falling-shapes/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpawnIndicator — точка, которая вспыхивает при каждом появлении фигуры
type SpawnIndicator struct {
	X, Y          float32
	Radius        float32
	Color         color.RGBA
	LastPulseTime time.Time
}

func NewSpawnIndicator(x, y, radius float32, clr color.RGBA) *SpawnIndicator {
	return &SpawnIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
		Color:  clr,
	}
}

// OnEvent реализует event.Listener: вспышка на ShapeSpawned.
func (i *SpawnIndicator) OnEvent(e event.Event) {
	if e.Type == event.ShapeSpawned {
		i.LastPulseTime = time.Now()
	}
}

// Draw отрисовывает индикатор
func (i *SpawnIndicator) Draw(screen *ebiten.Image) {
	elapsed := time.Since(i.LastPulseTime).Seconds()
	currentRadius := i.Radius * float32(utils.PulseScale(elapsed))

	c := i.Color
	// Гаснет за ~0.5с после вспышки
	c.A = uint8(utils.Lerp(255, 60, float32(min(elapsed*2, 1))))
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}
