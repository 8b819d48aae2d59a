package app

import (
	"math"
	"testing"
	"time"

	"falling-shapes/internal/config"
	"falling-shapes/internal/event"
	"falling-shapes/internal/shape"
	"falling-shapes/internal/types"
)

var t0 = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestGame() *Game {
	s := config.DefaultSettings()
	s.Seed = 3
	return NewGame(s)
}

func TestTickSpawnsOnFirstFrame(t *testing.T) {
	g := newTestGame()
	if !g.Tick(t0, 1) {
		t.Fatal("first tick should spawn")
	}
	if g.Manager.Count() != 1 || g.Stage.Len() != 1 {
		t.Fatalf("count/stage = %d/%d, want 1/1", g.Manager.Count(), g.Stage.Len())
	}
	var sh *shape.Shape
	g.Manager.Each(func(_ types.EntityID, s *shape.Shape) { sh = s })
	if sh.Y != config.SpawnY {
		t.Errorf("spawn y = %v, want %v", sh.Y, config.SpawnY)
	}
	if sh.X < 0 || sh.X >= float64(g.Settings.Width) {
		t.Errorf("spawn x = %v outside canvas", sh.X)
	}
	if sh.Kind == shape.Irregular {
		t.Error("automatic spawns must not be irregular")
	}
	if !g.Settings.LastSpawn.Equal(t0) {
		t.Errorf("LastSpawn = %v, want %v", g.Settings.LastSpawn, t0)
	}
}

func TestTickSpawnThrottle(t *testing.T) {
	g := newTestGame()
	g.Settings.ShapesPerSecond = 0.5
	g.Tick(t0, 1)

	if g.Tick(t0.Add(1000*time.Millisecond), 1) {
		t.Error("frame 1000ms later spawned at 0.5 shapes/s")
	}
	if !g.Tick(t0.Add(2000*time.Millisecond), 1) {
		t.Error("frame 2000ms later did not spawn")
	}
	if g.Manager.Count() != 2 {
		t.Errorf("Count() = %d, want 2", g.Manager.Count())
	}
}

func TestTickDoesNotCatchUp(t *testing.T) {
	g := newTestGame()
	g.Settings.ShapesPerSecond = 5
	g.Tick(t0, 1)
	// ten intervals late: still one shape per frame
	if !g.Tick(t0.Add(2*time.Second), 1) {
		t.Fatal("late frame should spawn")
	}
	if g.Tick(t0.Add(2*time.Second+time.Millisecond), 1) {
		t.Error("missed spawns must not be caught up")
	}
	if g.Manager.Count() != 2 {
		t.Errorf("Count() = %d, want 2", g.Manager.Count())
	}
}

func TestTickScalesGravityByFrameDelta(t *testing.T) {
	g := newTestGame()
	g.Settings.Gravity = 0.5
	g.Settings.LastSpawn = t0
	id, err := g.Spawn(shape.Circle, 100, 0)
	if err != nil {
		t.Fatal(err)
	}

	g.Tick(t0.Add(time.Millisecond), 2)

	v, _ := g.Manager.Velocity(id)
	sh, _ := g.Manager.Shape(id)
	if math.Abs(v.Y-1) > 1e-12 || math.Abs(sh.Y-1) > 1e-12 {
		t.Errorf("velocity.Y=%v y=%v, want 1/1", v.Y, sh.Y)
	}
}

func TestShapesFallOffAndAreRemoved(t *testing.T) {
	g := newTestGame()
	g.Settings.Gravity = 2
	g.Settings.LastSpawn = t0
	if _, err := g.Spawn(shape.Star, 10, 0); err != nil {
		t.Fatal(err)
	}

	now := t0
	for i := 0; i < 100 && g.Manager.Count() > 0; i++ {
		now = now.Add(time.Millisecond)
		g.Tick(now, 1)
	}
	if g.Manager.Count() != 0 || g.Stage.Len() != 0 {
		t.Errorf("count/stage = %d/%d after falling, want 0/0", g.Manager.Count(), g.Stage.Len())
	}
}

func TestClickPopsOrSpawns(t *testing.T) {
	g := newTestGame()
	popped := &eventLog{}
	g.EventDispatcher.Subscribe(popped, event.ShapePopped)

	popped1, err := g.Click(400, 300)
	if err != nil || popped1 {
		t.Fatalf("click on empty canvas = %v, %v; want spawn", popped1, err)
	}
	if g.Manager.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", g.Manager.Count())
	}
	id, ok := g.Manager.ShapeAt(400, 300)
	if !ok {
		t.Fatal("spawned shape not under the click point")
	}
	sh, _ := g.Manager.Shape(id)
	if sh.Kind != shape.Irregular {
		t.Errorf("click spawn kind = %v, want irregular", sh.Kind)
	}

	popped2, err := g.Click(400, 300)
	if err != nil || !popped2 {
		t.Fatalf("click on shape = %v, %v; want pop", popped2, err)
	}
	if g.Manager.Count() != 0 || g.Stage.Len() != 0 || !sh.Destroyed() {
		t.Error("popped shape should be gone from manager and stage and destroyed")
	}
	if len(popped.events) != 1 {
		t.Errorf("ShapePopped events = %d, want 1", len(popped.events))
	}
}

func TestClickKindFromSettings(t *testing.T) {
	g := newTestGame()
	g.Settings.ClickKind = shape.Hexagon
	g.Click(100, 100)
	id, _ := g.Manager.ShapeAt(100, 100)
	sh, _ := g.Manager.Shape(id)
	if sh == nil || sh.Kind != shape.Hexagon {
		t.Errorf("click spawn = %+v, want hexagon", sh)
	}
}

func TestSpawnUnknownKind(t *testing.T) {
	g := newTestGame()
	if _, err := g.Spawn(shape.Kind(42), 0, 0); err == nil {
		t.Fatal("Spawn of an unknown kind should fail")
	}
	if g.Manager.Count() != 0 || g.Stage.Len() != 0 {
		t.Error("failed spawn left state behind")
	}
}

func TestStatsRoundsArea(t *testing.T) {
	g := newTestGame()
	g.Spawn(shape.Square, 100, 100)
	g.Spawn(shape.Ellipse, 300, 100)

	st := g.Stats()
	if st.Count != 2 {
		t.Errorf("Count = %d, want 2", st.Count)
	}
	if want := int(math.Round(g.Manager.TotalArea())); st.Area != want {
		t.Errorf("Area = %d, want %d", st.Area, want)
	}
}

func TestHoverCursor(t *testing.T) {
	g := newTestGame()
	g.Spawn(shape.Circle, 200, 200)
	if c := g.HoverCursor(200, 200); c != shape.CursorPointer {
		t.Errorf("cursor over shape = %v, want pointer", c)
	}
	if c := g.HoverCursor(700, 500); c != shape.CursorDefault {
		t.Errorf("cursor over empty canvas = %v, want default", c)
	}
}

func TestApplyControls(t *testing.T) {
	g := newTestGame()
	changed := &eventLog{}
	g.EventDispatcher.Subscribe(changed, event.SettingsChanged)

	g.Apply(IncreaseSpawnRate)
	g.Apply(IncreaseGravity)
	g.Apply(DecreaseGravity)
	g.Apply(DecreaseSpawnRate)
	g.Apply(DecreaseSpawnRate)
	g.Apply(ControlAction(99))

	if g.Settings.ShapesPerSecond != 0.5 || g.Settings.GravityLabel() != "0.1" {
		t.Errorf("settings = %v/%v", g.Settings.ShapesPerSecond, g.Settings.Gravity)
	}
	if len(changed.events) != 5 {
		t.Fatalf("SettingsChanged events = %d, want 5", len(changed.events))
	}
	if d := changed.events[0].Data.(event.SettingsData); d.ShapesPerSecond != 1 {
		t.Errorf("first event rate = %v, want 1", d.ShapesPerSecond)
	}
}
