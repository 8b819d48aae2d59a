package audio

import (
	"testing"

	"falling-shapes/internal/event"
)

func TestToneFor(t *testing.T) {
	tests := []struct {
		typ  event.EventType
		want float64
		ok   bool
	}{
		{event.ShapePopped, popFrequency, true},
		{event.ShapeFellOff, dropFrequency, true},
		{event.ShapeSpawned, 0, false},
	}
	for _, tt := range tests {
		got, ok := toneFor(tt.typ)
		if got != tt.want || ok != tt.ok {
			t.Errorf("toneFor(%s) = %v, %v; want %v, %v", tt.typ, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSilentPlayerIgnoresEvents(t *testing.T) {
	p := &Player{}
	d := event.NewDispatcher()
	p.Subscribe(d)
	// must not touch the speaker
	d.Dispatch(event.Event{Type: event.ShapePopped})
	d.Dispatch(event.Event{Type: event.ShapeFellOff})
	p.Close()
}
