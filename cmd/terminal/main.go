// cmd/terminal/main.go
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"falling-shapes/internal/app"
	"falling-shapes/internal/audio"
	"falling-shapes/internal/config"
	"falling-shapes/internal/terminal"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	logPath := flag.String("log", "", "write log output to this file instead of discarding it")
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

	game := app.NewGame(settings)

	// Звук не обязателен: без динамика играем молча.
	player, err := audio.NewPlayer()
	if err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	player.Subscribe(game.EventDispatcher)
	defer player.Close()

	screen, err := terminal.NewScreen()
	if err != nil {
		log.Fatal(err)
	}

	// Пока tcell владеет терминалом, stderr писать нельзя.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}
	defer log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := terminal.New(screen, game).Run(ctx); err != nil && err != context.Canceled {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
