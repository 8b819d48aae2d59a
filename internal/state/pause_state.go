// internal/state/pause_state.go
package state

import (
	"time"

	"falling-shapes/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: Tick не вызывается, предыдущее
// состояние только рисуется.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	font          font.Face
}

func NewPauseState(sm *StateMachine, prevState *GameState, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.previousState.pauseButton.IsClicked(x, y) {
			unpause = true
		}
	}

	if unpause && s.previousState.pauseButton.TogglePause(time.Now()) {
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	canvas := s.previousState.game.Stage.Mask
	vector.DrawFilledRect(screen, float32(canvas.Min.X), float32(canvas.Min.Y), float32(canvas.Dx()), float32(canvas.Dy()), config.OverlayColor, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(s.font, pauseText)
	x := canvas.Min.X + (canvas.Dx()-bounds.Dx())/2
	y := canvas.Min.Y + canvas.Dy()/2
	text.Draw(screen, pauseText, s.font, x, y, config.TextLightColor)

	// Кнопка паузы рисуется поверх затемнения, чтобы было куда кликнуть
	s.previousState.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {}
