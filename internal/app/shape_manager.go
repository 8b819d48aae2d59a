// internal/app/shape_manager.go
package app

import (
	"errors"

	"falling-shapes/internal/component"
	"falling-shapes/internal/config"
	"falling-shapes/internal/entity"
	"falling-shapes/internal/event"
	"falling-shapes/internal/shape"
	"falling-shapes/internal/system"
	"falling-shapes/internal/types"
)

var (
	// ErrShapeTracked is returned when the same shape is added twice.
	ErrShapeTracked = errors.New("shape is already managed")
	// ErrShapeDestroyed is returned when adding a destroyed or nil shape.
	ErrShapeDestroyed = errors.New("shape is destroyed")
)

// ShapeManager owns the live shapes, their velocities and cached areas.
type ShapeManager struct {
	ECS             *entity.ECS
	MovementSystem  *system.MovementSystem
	EventDispatcher *event.Dispatcher

	index map[*shape.Shape]types.EntityID
}

// NewShapeManager creates an empty manager. A nil dispatcher gets a private one.
func NewShapeManager(dispatcher *event.Dispatcher) *ShapeManager {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	ecs := entity.NewECS()
	return &ShapeManager{
		ECS:             ecs,
		MovementSystem:  system.NewMovementSystem(ecs),
		EventDispatcher: dispatcher,
		index:           make(map[*shape.Shape]types.EntityID),
	}
}

// AddShape starts tracking sh and returns its handle. The area is taken from the
// bounding box now and never recomputed.
func (m *ShapeManager) AddShape(sh *shape.Shape, velocity component.Velocity) (types.EntityID, error) {
	if sh == nil || sh.Destroyed() {
		return types.InvalidEntity, ErrShapeDestroyed
	}
	if _, tracked := m.index[sh]; tracked {
		return types.InvalidEntity, ErrShapeTracked
	}

	id := m.ECS.NewEntity()
	v := velocity
	m.ECS.Shapes[id] = sh
	m.ECS.Velocities[id] = &v
	m.ECS.Areas[id] = sh.Bounds().Area()
	m.index[sh] = id
	return id, nil
}

// RemoveShape stops tracking the shape behind id. It reports false when id is
// unknown; the shape itself is left attached and alive.
func (m *ShapeManager) RemoveShape(id types.EntityID) bool {
	sh, ok := m.ECS.Shapes[id]
	if !ok {
		return false
	}
	delete(m.index, sh)
	return m.ECS.DestroyEntity(id)
}

// RemoveShapeByRef is RemoveShape for callers that only hold the shape.
func (m *ShapeManager) RemoveShapeByRef(sh *shape.Shape) bool {
	id, ok := m.index[sh]
	if !ok {
		return false
	}
	return m.RemoveShape(id)
}

// Lookup returns the handle of a tracked shape.
func (m *ShapeManager) Lookup(sh *shape.Shape) (types.EntityID, bool) {
	id, ok := m.index[sh]
	return id, ok
}

// Shape returns the shape behind id.
func (m *ShapeManager) Shape(id types.EntityID) (*shape.Shape, bool) {
	sh, ok := m.ECS.Shapes[id]
	return sh, ok
}

// Velocity returns a copy of the velocity of id.
func (m *ShapeManager) Velocity(id types.EntityID) (component.Velocity, bool) {
	v, ok := m.ECS.Velocities[id]
	if !ok {
		return component.Velocity{}, false
	}
	return *v, true
}

// Destroy removes id from the manager, detaches the shape from its render parent
// and destroys it. reason is dispatched as the event type when not empty.
func (m *ShapeManager) Destroy(id types.EntityID, reason event.EventType) bool {
	sh, ok := m.ECS.Shapes[id]
	if !ok {
		return false
	}
	m.RemoveShape(id)
	if parent := sh.Parent(); parent != nil {
		parent.RemoveChild(sh)
	}
	sh.Destroy()
	if reason != "" {
		m.EventDispatcher.Dispatch(event.Event{Type: reason, Data: event.ShapeData{ID: id, Shape: sh}})
	}
	return true
}

// TotalArea sums the cached areas.
func (m *ShapeManager) TotalArea() float64 {
	total := 0.0
	for _, id := range m.ECS.Order {
		total += m.ECS.Areas[id]
	}
	return total
}

// Count returns the number of live entries.
func (m *ShapeManager) Count() int {
	return m.ECS.Count()
}

// Update advances every shape by one step and then destroys the shapes that fell
// past boundaryHeight + config.BoundaryMargin. Removal runs after the whole update pass.
func (m *ShapeManager) Update(gravity, boundaryHeight float64) {
	m.MovementSystem.Update(gravity)
	for _, id := range m.MovementSystem.Beyond(boundaryHeight + config.BoundaryMargin) {
		m.Destroy(id, event.ShapeFellOff)
	}
}

// ShapeAt returns the topmost interactive shape containing (x, y).
func (m *ShapeManager) ShapeAt(x, y float64) (types.EntityID, bool) {
	for i := len(m.ECS.Order) - 1; i >= 0; i-- {
		id := m.ECS.Order[i]
		if sh := m.ECS.Shapes[id]; sh.Interactive && sh.Contains(x, y) {
			return id, true
		}
	}
	return types.InvalidEntity, false
}

// Each calls fn for every live shape in insertion order. fn must not add or
// remove shapes.
func (m *ShapeManager) Each(fn func(id types.EntityID, sh *shape.Shape)) {
	for _, id := range m.ECS.Order {
		fn(id, m.ECS.Shapes[id])
	}
}
