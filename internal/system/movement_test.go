package system

import (
	"math"
	"testing"

	"falling-shapes/internal/component"
	"falling-shapes/internal/entity"
	"falling-shapes/internal/shape"
)

func addShape(ecs *entity.ECS, y, vy float64) *shape.Shape {
	id := ecs.NewEntity()
	sh := &shape.Shape{Y: y}
	ecs.Shapes[id] = sh
	ecs.Velocities[id] = &component.Velocity{Y: vy}
	return sh
}

func TestMovementSemiImplicitEuler(t *testing.T) {
	ecs := entity.NewECS()
	sh := addShape(ecs, 0, 0)
	id := ecs.Order[0]
	sys := NewMovementSystem(ecs)

	sys.Update(0.1)
	if v := ecs.Velocities[id].Y; math.Abs(v-0.1) > 1e-12 {
		t.Errorf("velocity.Y = %v, want 0.1", v)
	}
	if math.Abs(sh.Y-0.1) > 1e-12 {
		t.Errorf("y = %v, want 0.1", sh.Y)
	}

	sys.Update(0.1)
	if math.Abs(sh.Y-0.3) > 1e-12 {
		t.Errorf("y after two steps = %v, want 0.3", sh.Y)
	}
}

func TestMovementIgnoresHorizontalVelocity(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	sh := &shape.Shape{X: 5}
	ecs.Shapes[id] = sh
	ecs.Velocities[id] = &component.Velocity{X: 3}

	NewMovementSystem(ecs).Update(1)
	if sh.X != 5 {
		t.Errorf("x = %v, want unchanged 5", sh.X)
	}
}

func TestBeyond(t *testing.T) {
	ecs := entity.NewECS()
	addShape(ecs, 699, 0)
	addShape(ecs, 701, 0)
	addShape(ecs, 700, 0)
	addShape(ecs, 900, 0)

	got := NewMovementSystem(ecs).Beyond(700)
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("Beyond(700) = %v, want [2 4]", got)
	}
}
