package render

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#1a1a2e", color.RGBA{0x1a, 0x1a, 0x2e, 0xff}, false},
		{"0xffffff", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"00ff00", color.RGBA{0, 0xff, 0, 0xff}, false},
		{"#fff", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexString(t *testing.T) {
	if got := HexString(RGB(0x1a1a2e)); got != "#1a1a2e" {
		t.Errorf("HexString = %q", got)
	}
}

func TestDarkenLighten(t *testing.T) {
	c := color.RGBA{200, 100, 0, 255}
	if got := DarkenColor(c); got != (color.RGBA{100, 50, 0, 255}) {
		t.Errorf("DarkenColor = %v", got)
	}
	if got := LightenColor(c); got != (color.RGBA{227, 177, 127, 255}) {
		t.Errorf("LightenColor = %v", got)
	}
}

func TestLoadFontFace(t *testing.T) {
	face, err := LoadFontFace(14)
	if err != nil {
		t.Fatalf("LoadFontFace: %v", err)
	}
	defer face.Close()
	if face.Metrics().Height <= 0 {
		t.Error("font face has no height")
	}
}
