// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"falling-shapes/internal/app"
	"falling-shapes/internal/config"
	"falling-shapes/internal/state"
	"falling-shapes/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	settings       *config.Settings
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout фиксирует логический размер: холст + панель. Координаты курсора
// ebiten уже отдаёт в этих единицах, как бы ни было растянуто окно.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.Width, a.settings.Height + config.PanelHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configPath != "" {
		var err error
		if settings, err = config.LoadSettings(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	fontFace, err := render.LoadFontFace(config.FontSize)
	if err != nil {
		log.Fatal(err)
	}
	titleFace, err := render.LoadFontFace(config.TitleFontSize)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(settings)
	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, fontFace, titleFace))

	appGame := &AppGame{
		stateMachine:   sm,
		settings:       settings,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.Width, settings.Height+config.PanelHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Falling Shapes")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
