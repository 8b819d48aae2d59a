// internal/entity/ecs.go
package entity

import (
	"falling-shapes/internal/component"
	"falling-shapes/internal/shape"
	"falling-shapes/internal/types"
)

// ECS хранит компоненты живых фигур. Order фиксирует порядок вставки:
// по нему идут обновление и отрисовка.
type ECS struct {
	NextID     types.EntityID
	Shapes     map[types.EntityID]*shape.Shape
	Velocities map[types.EntityID]*component.Velocity
	Areas      map[types.EntityID]float64
	Order      []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Shapes:     make(map[types.EntityID]*shape.Shape),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Areas:      make(map[types.EntityID]float64),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.Order = append(ecs.Order, id)
	return id
}

// DestroyEntity удаляет все компоненты сущности. Возвращает false, если её нет.
func (ecs *ECS) DestroyEntity(id types.EntityID) bool {
	if _, ok := ecs.Shapes[id]; !ok {
		return false
	}
	delete(ecs.Shapes, id)
	delete(ecs.Velocities, id)
	delete(ecs.Areas, id)
	for i, existing := range ecs.Order {
		if existing == id {
			ecs.Order = append(ecs.Order[:i], ecs.Order[i+1:]...)
			break
		}
	}
	return true
}

// Count — число живых сущностей.
func (ecs *ECS) Count() int {
	return len(ecs.Shapes)
}
