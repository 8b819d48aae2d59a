// internal/state/game_state.go
package state

import (
	"log"
	"time"

	"falling-shapes/internal/app"
	"falling-shapes/internal/config"
	"falling-shapes/internal/event"
	"falling-shapes/internal/shape"
	"falling-shapes/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// GameState — состояние игры: холст с фигурами и панель управления
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	renderer    *ui.StageRenderer
	controls    *ui.ControlPanel
	pauseButton *ui.PauseButton
	indicator   *ui.SpawnIndicator
	fontFace    font.Face
	titleFace   font.Face
}

func NewGameState(sm *StateMachine, game *app.Game, fontFace, titleFace font.Face) *GameState {
	width := float32(game.Settings.Width)
	pauseButton := ui.NewPauseButton(width-config.IndicatorOffsetX, config.IndicatorOffsetX, config.PauseButtonSize, config.PauseColor, config.PlayColor)
	indicator := ui.NewSpawnIndicator(width-2*config.IndicatorOffsetX-10, config.IndicatorOffsetX, config.IndicatorRadius, config.SpawnPulseColor)
	game.EventDispatcher.Subscribe(indicator, event.ShapeSpawned)

	return &GameState{
		sm:          sm,
		game:        game,
		renderer:    ui.NewStageRenderer(),
		controls:    ui.NewControlPanel(game.Settings.Height, fontFace),
		pauseButton: pauseButton,
		indicator:   indicator,
		fontFace:    fontFace,
		titleFace:   titleFace,
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

// Resume вызывается, когда снята пауза.
func (g *GameState) Resume() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause(time.Now())
		return
	}

	g.game.Tick(time.Now(), deltaTime*config.TargetTPS)

	mx, my := ebiten.CursorPosition()
	g.updateCursor(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(mx, my)
	}
}

func (g *GameState) handleClick(x, y int) {
	now := time.Now()
	// Проверяем клик по UI элементам в первую очередь
	if g.pauseButton.IsClicked(x, y) {
		g.pause(now)
		return
	}
	if g.controls.HandleClick(x, y, g.game, now) {
		return
	}
	if _, err := g.game.Click(float64(x), float64(y)); err != nil {
		// Клик-спаун с некорректным видом фигуры не должен ронять игру
		log.Printf("click at (%d, %d): %v", x, y, err)
	}
}

func (g *GameState) updateCursor(x, y int) {
	if y >= g.game.Settings.Height {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		return
	}
	switch g.game.HoverCursor(float64(x), float64(y)) {
	case shape.CursorPointer:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func (g *GameState) pause(now time.Time) {
	if !g.pauseButton.TogglePause(now) {
		return
	}
	g.sm.Push(NewPauseState(g.sm, g, g.titleFace))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	canvas := g.game.Stage.Mask
	screen.SubImage(canvas).(*ebiten.Image).Fill(g.game.Settings.Background)

	g.renderer.Draw(screen, g.game.Stage)
	g.indicator.Draw(screen)
	g.pauseButton.Draw(screen)
	g.controls.Draw(screen, g.game)
}

func (g *GameState) Exit() {}
