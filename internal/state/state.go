// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — один экран приложения
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Resumer реализуют состояния, которым важно узнать, что оверлей над ними снят.
type Resumer interface {
	Resume()
}

// StateMachine — стек состояний. Обновляется и рисуется только верхнее;
// нижние остаются «замороженными» (пауза поверх игры).
type StateMachine struct {
	stack []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState выходит из всех состояний стека и оставляет в нём только newState.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.pop()
	}
	if newState != nil {
		sm.Push(newState)
	}
}

// Push кладёт состояние поверх текущего, не вызывая у текущего Exit.
func (sm *StateMachine) Push(s State) {
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхнее состояние и возобновляет то, что под ним.
// Возвращает false, если стек пуст.
func (sm *StateMachine) Pop() bool {
	if len(sm.stack) == 0 {
		return false
	}
	sm.pop()
	if r, ok := sm.Current().(Resumer); ok {
		r.Resume()
	}
	return true
}

func (sm *StateMachine) pop() {
	top := sm.stack[len(sm.stack)-1]
	sm.stack[len(sm.stack)-1] = nil
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// Current возвращает верхнее состояние или nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Depth — число состояний в стеке.
func (sm *StateMachine) Depth() int {
	return len(sm.stack)
}

func (sm *StateMachine) Update(deltaTime float64) {
	if cur := sm.Current(); cur != nil {
		cur.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if cur := sm.Current(); cur != nil {
		cur.Draw(screen)
	}
}
