// internal/system/movement.go
package system

import (
	"falling-shapes/internal/entity"
	"falling-shapes/internal/types"
)

// MovementSystem обновляет позиции фигур под действием гравитации
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update делает один шаг полунеявного Эйлера: сначала скорость, потом позиция.
// Горизонтальная скорость хранится, но к X не применяется.
func (s *MovementSystem) Update(gravity float64) {
	for _, id := range s.ecs.Order {
		sh, hasShape := s.ecs.Shapes[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasShape || !hasVel {
			continue
		}
		vel.Y += gravity
		sh.Y += vel.Y
	}
}

// Beyond возвращает фигуры, чей Y строго больше limit, в порядке вставки.
func (s *MovementSystem) Beyond(limit float64) []types.EntityID {
	var out []types.EntityID
	for _, id := range s.ecs.Order {
		if sh, ok := s.ecs.Shapes[id]; ok && sh.Y > limit {
			out = append(out, id)
		}
	}
	return out
}
