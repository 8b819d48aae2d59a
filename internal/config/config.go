// internal/config/config.go
package config

import "image/color"

const (
	CanvasWidth  = 800
	CanvasHeight = 600
	PanelHeight  = 64 // Панель управления под холстом

	ScreenWidth  = CanvasWidth
	ScreenHeight = CanvasHeight + PanelHeight

	TargetTPS    = 60   // Кадров в секунду, на которые рассчитана гравитация
	MaxDeltaTime = 0.06 // Секунды

	SpawnY         = -50.0 // Фигуры появляются над верхним краем
	BoundaryMargin = 100.0 // Фигура удаляется, когда Y > высота + BoundaryMargin

	DefaultGravity         = 0.1
	MinGravity             = 0.1
	MaxGravity             = 2.0
	GravityStep            = 0.1
	DefaultShapesPerSecond = 0.5
	MinShapesPerSecond     = 0.5
	MaxShapesPerSecond     = 5.0
	ShapesPerSecondStep    = 0.5

	CircleSegments = 48 // Точек на окружность/эллипс при отрисовке

	ButtonWidth   = 36
	ButtonHeight  = 28
	ButtonSpacing = 8
	ClickCooldown = 120 // мс
	FontSize      = 14
	TitleFontSize = 40

	PauseButtonSize   = 10.0
	IndicatorRadius   = 8.0
	IndicatorOffsetX  = 30
	ShapeOutlineWidth = 1.5
)

var (
	BackgroundColor  = color.RGBA{0x1a, 0x1a, 0x2e, 255}
	PanelColor       = color.RGBA{16, 16, 32, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 240}
	ButtonStroke     = color.RGBA{240, 240, 240, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{160, 160, 180, 255}
	PauseColor       = color.RGBA{220, 60, 60, 220}
	PlayColor        = color.RGBA{50, 205, 50, 220}
	SpawnPulseColor  = color.RGBA{255, 215, 0, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
)
