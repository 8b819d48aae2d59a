// Package terminal runs the simulation in a tcell full-screen view: shapes are
// rasterised into cells, the last row shows stats and key help.
package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"falling-shapes/internal/app"
	"falling-shapes/internal/config"

	"github.com/gdamore/tcell/v2"
)

const (
	cellRune   = '█'
	statusRows = 1
)

// App owns the screen and the loop. The simulation is only touched from Run's
// goroutine; the input goroutine just forwards events.
type App struct {
	screen tcell.Screen
	game   *app.Game

	prevButtons tcell.ButtonMask
	quit        bool
}

// New wraps an initialized screen. Use NewScreen for a real terminal.
func New(screen tcell.Screen, game *app.Game) *App {
	return &App{screen: screen, game: game}
}

// NewScreen creates and initializes a tcell screen with mouse reporting on.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// Run drives the loop at config.TargetTPS until ctx is done or the user quits.
// The screen is finalized on return.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Fini()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / config.TargetTPS)
	defer ticker.Stop()
	last := time.Now()

	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.HandleEvent(ev)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			a.game.Tick(now, dt*config.TargetTPS)
			a.Draw()
		}
	}
	return nil
}

// HandleEvent applies one input event to the simulation.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && a.prevButtons&tcell.Button1 == 0
		a.prevButtons = buttons
		if pressed {
			x, y := ev.Position()
			a.click(x, y)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case 'q':
		a.quit = true
	case '+', '=':
		a.game.Apply(app.IncreaseSpawnRate)
	case '-', '_':
		a.game.Apply(app.DecreaseSpawnRate)
	case ']':
		a.game.Apply(app.IncreaseGravity)
	case '[':
		a.game.Apply(app.DecreaseGravity)
	}
}

// click translates a cell to canvas space, clicking the cell center.
func (a *App) click(col, row int) {
	cols, rows := a.canvasGrid()
	if row >= rows || cols <= 0 || rows <= 0 {
		return
	}
	x, y := a.game.Settings.ToCanvas(float64(col)+0.5, float64(row)+0.5, float64(cols), float64(rows))
	if _, err := a.game.Click(x, y); err != nil {
		log.Printf("click at (%.0f, %.0f): %v", x, y, err)
	}
}

// canvasGrid is the part of the screen the canvas is stretched over.
func (a *App) canvasGrid() (cols, rows int) {
	w, h := a.screen.Size()
	return w, h - statusRows
}

// Quit reports whether the user asked to leave.
func (a *App) Quit() bool { return a.quit }

// Draw paints the current frame and the status line.
func (a *App) Draw() {
	s := a.game.Settings
	bg := tcell.StyleDefault.Background(rgb(s.Background.R, s.Background.G, s.Background.B))

	cols, rows := a.canvasGrid()
	frame := Rasterize(a.game.Stage, cols, rows, float64(s.Width), float64(s.Height))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if clr, ok := frame.At(c, r); ok {
				a.screen.SetContent(c, r, cellRune, nil, bg.Foreground(rgb(clr.R, clr.G, clr.B)))
			} else {
				a.screen.SetContent(c, r, ' ', nil, bg)
			}
		}
	}

	stats := a.game.Stats()
	status := fmt.Sprintf(" shapes: %d  area: %d  rate: %s/s [+/-]  gravity: %s [[/]]  q: quit",
		stats.Count, stats.Area, s.SpawnRateLabel(), s.GravityLabel())
	a.drawStatus(rows, cols, status)
	a.screen.Show()
}

func (a *App) drawStatus(row, width int, status string) {
	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range status {
		if col >= width {
			break
		}
		a.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		a.screen.SetContent(col, row, ' ', nil, style)
	}
}

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
