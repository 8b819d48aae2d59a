// internal/app/game.go
package app

import (
	"fmt"
	"image"
	"log"
	"math"
	"time"

	"falling-shapes/internal/component"
	"falling-shapes/internal/config"
	"falling-shapes/internal/event"
	"falling-shapes/internal/scene"
	"falling-shapes/internal/shape"
	"falling-shapes/internal/types"
	"falling-shapes/internal/utils"
)

// Stats is what the stats labels show every frame.
type Stats struct {
	Count int
	Area  int
}

// Game holds the simulation: settings, the shape factory, the manager and the
// stage the shapes are drawn from. It knows nothing about the frontend.
type Game struct {
	Settings        *config.Settings
	Factory         *shape.Factory
	Manager         *ShapeManager
	Stage           *scene.Container
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
}

// NewGame initializes a new simulation around settings. A nil settings value
// means DefaultSettings.
func NewGame(settings *config.Settings) *Game {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	rng := utils.NewPRNGService(settings.Seed)
	dispatcher := event.NewDispatcher()

	g := &Game{
		Settings:        settings,
		Factory:         shape.NewFactory(rng),
		Manager:         NewShapeManager(dispatcher),
		Stage:           scene.NewContainer(image.Rect(0, 0, settings.Width, settings.Height)),
		EventDispatcher: dispatcher,
		Rng:             rng,
	}

	if settings.Verbose {
		log.Printf("simulation seed %d", rng.Seed())
		dispatcher.Subscribe(&logListener{}, event.ShapeSpawned, event.ShapePopped, event.ShapeFellOff, event.SettingsChanged)
	}
	return g
}

// Tick advances the simulation by one frame. frameDelta is measured in 60 Hz
// frames (1.0 for a frame on time). At most one shape is spawned per tick; missed
// spawns are not caught up. It reports whether a shape was spawned.
func (g *Game) Tick(now time.Time, frameDelta float64) bool {
	g.Manager.Update(g.Settings.Gravity*frameDelta, float64(g.Settings.Height))

	if !g.Settings.SpawnDue(now) {
		return false
	}
	x := g.Rng.Float64() * float64(g.Settings.Width)
	if _, err := g.Spawn(g.Factory.RandomKind(), x, config.SpawnY); err != nil {
		log.Printf("spawn failed: %v", err)
		return false
	}
	g.Settings.MarkSpawned(now)
	return true
}

// Spawn creates a shape of kind with a random color at (x, y), puts it on stage
// and starts tracking it with zero velocity.
func (g *Game) Spawn(kind shape.Kind, x, y float64) (types.EntityID, error) {
	sh, err := g.Factory.CreateShape(kind, x, y, g.Factory.RandomColor())
	if err != nil {
		return types.InvalidEntity, fmt.Errorf("spawn: %w", err)
	}
	if err := g.Stage.AddChild(sh); err != nil {
		return types.InvalidEntity, fmt.Errorf("spawn: %w", err)
	}
	id, err := g.Manager.AddShape(sh, component.Velocity{})
	if err != nil {
		g.Stage.RemoveChild(sh)
		return types.InvalidEntity, fmt.Errorf("spawn: %w", err)
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.ShapeSpawned, Data: event.ShapeData{ID: id, Shape: sh}})
	return id, nil
}

// Click handles a press at canvas coordinates. A hit shape is popped and the click
// is consumed; a miss spawns the configured click kind at the point.
func (g *Game) Click(x, y float64) (popped bool, err error) {
	if id, ok := g.Manager.ShapeAt(x, y); ok {
		return g.Pop(id), nil
	}
	_, err = g.Spawn(g.Settings.ClickKind, x, y)
	return false, err
}

// Pop removes a shape the way a pointer press does.
func (g *Game) Pop(id types.EntityID) bool {
	return g.Manager.Destroy(id, event.ShapePopped)
}

// HoverCursor reports the cursor to show over (x, y).
func (g *Game) HoverCursor(x, y float64) shape.Cursor {
	if id, ok := g.Manager.ShapeAt(x, y); ok {
		sh, _ := g.Manager.Shape(id)
		return sh.Cursor
	}
	return shape.CursorDefault
}

// Stats returns the live count and the total area rounded to an integer.
func (g *Game) Stats() Stats {
	return Stats{
		Count: g.Manager.Count(),
		Area:  int(math.Round(g.Manager.TotalArea())),
	}
}

// ControlAction is one of the four settings buttons.
type ControlAction int

const (
	DecreaseSpawnRate ControlAction = iota
	IncreaseSpawnRate
	DecreaseGravity
	IncreaseGravity
)

// Apply runs a control action against the settings and announces the new values.
func (g *Game) Apply(action ControlAction) {
	switch action {
	case DecreaseSpawnRate:
		g.Settings.DecreaseSpawnRate()
	case IncreaseSpawnRate:
		g.Settings.IncreaseSpawnRate()
	case DecreaseGravity:
		g.Settings.DecreaseGravity()
	case IncreaseGravity:
		g.Settings.IncreaseGravity()
	default:
		return
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.SettingsChanged,
		Data: event.SettingsData{ShapesPerSecond: g.Settings.ShapesPerSecond, Gravity: g.Settings.Gravity},
	})
}

// logListener пишет события жизненного цикла в лог (только в verbose-режиме).
type logListener struct{}

func (l *logListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ShapeData:
		log.Printf("%s: id=%d kind=%s x=%.1f y=%.1f", e.Type, data.ID, data.Shape.Kind, data.Shape.X, data.Shape.Y)
	case event.SettingsData:
		log.Printf("%s: shapes/s=%v gravity=%.1f", e.Type, data.ShapesPerSecond, data.Gravity)
	}
}
