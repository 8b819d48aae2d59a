// Package audio plays short synthesized sounds for shape lifecycle events.
package audio

import (
	"fmt"
	"time"

	"falling-shapes/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	popFrequency  = 880.0
	dropFrequency = 220.0
	toneDuration  = 50 * time.Millisecond
)

// Player subscribes to lifecycle events and beeps. The zero value is silent.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. A failure leaves a silent player and is
// returned so the caller can log it; the game runs without sound.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, fmt.Errorf("audio init: %w", err)
	}
	return &Player{enabled: true}, nil
}

// Subscribe hooks the player to the events it reacts to.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.Subscribe(p, event.ShapePopped, event.ShapeFellOff)
}

// OnEvent implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	if tone, ok := toneFor(e.Type); ok {
		p.play(tone)
	}
}

// toneFor maps an event to a frequency: a high pop for clicks, a low thud for
// shapes leaving the screen.
func toneFor(t event.EventType) (float64, bool) {
	switch t {
	case event.ShapePopped:
		return popFrequency, true
	case event.ShapeFellOff:
		return dropFrequency, true
	}
	return 0, false
}

func (p *Player) play(freq float64) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneDuration), sine))
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}
