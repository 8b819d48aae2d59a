// internal/event/types.go
package event

import (
	"falling-shapes/internal/shape"
	"falling-shapes/internal/types"
)

const (
	ShapeSpawned    EventType = "ShapeSpawned"    // Фигура добавлена на сцену
	ShapePopped     EventType = "ShapePopped"     // Фигура удалена кликом
	ShapeFellOff    EventType = "ShapeFellOff"    // Фигура упала за границу
	SettingsChanged EventType = "SettingsChanged" // Изменены скорость появления или гравитация
)

// ShapeData — данные событий жизненного цикла фигуры.
type ShapeData struct {
	ID    types.EntityID
	Shape *shape.Shape
}

// SettingsData — данные события SettingsChanged.
type SettingsData struct {
	ShapesPerSecond float64
	Gravity         float64
}
