package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"falling-shapes/internal/shape"
	"falling-shapes/internal/utils"
	"falling-shapes/pkg/render"
)

// ErrInvalidSettings wraps every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the mutable run configuration. It is passed explicitly to the
// simulation and to the control handlers.
type Settings struct {
	Width           int
	Height          int
	Gravity         float64
	ShapesPerSecond float64
	LastSpawn       time.Time
	ClickKind       shape.Kind
	Seed            int64
	Background      color.RGBA
	Verbose         bool
}

// settingsFile is the on-disk YAML layout.
type settingsFile struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	Gravity         float64 `yaml:"gravity"`
	ShapesPerSecond float64 `yaml:"shapes_per_second"`
	ClickKind       string  `yaml:"click_kind"`
	Seed            int64   `yaml:"seed"`
	Background      string  `yaml:"background"`
	Verbose         bool    `yaml:"verbose"`
}

// DefaultSettings returns the stock 800x600 canvas with gentle gravity.
func DefaultSettings() *Settings {
	return &Settings{
		Width:           CanvasWidth,
		Height:          CanvasHeight,
		Gravity:         DefaultGravity,
		ShapesPerSecond: DefaultShapesPerSecond,
		ClickKind:       shape.Irregular,
		Background:      BackgroundColor,
	}
}

// LoadSettings reads a YAML settings file. Missing keys keep their defaults,
// unknown keys are rejected.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseSettings decodes YAML on top of DefaultSettings and validates the result.
func ParseSettings(data []byte) (*Settings, error) {
	def := DefaultSettings()
	raw := settingsFile{
		Width:           def.Width,
		Height:          def.Height,
		Gravity:         def.Gravity,
		ShapesPerSecond: def.ShapesPerSecond,
		ClickKind:       def.ClickKind.String(),
		Seed:            def.Seed,
		Background:      render.HexString(def.Background),
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	kind, err := shape.ParseKind(raw.ClickKind)
	if err != nil {
		return nil, fmt.Errorf("%w: click_kind: %w", ErrInvalidSettings, err)
	}
	bg, err := render.ParseHexColor(raw.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: background: %w", ErrInvalidSettings, err)
	}

	s := &Settings{
		Width:           raw.Width,
		Height:          raw.Height,
		Gravity:         raw.Gravity,
		ShapesPerSecond: raw.ShapesPerSecond,
		ClickKind:       kind,
		Seed:            raw.Seed,
		Background:      bg,
		Verbose:         raw.Verbose,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every field against the ranges the controls enforce.
func (s *Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d must be positive", ErrInvalidSettings, s.Width, s.Height)
	case s.Gravity < MinGravity || s.Gravity > MaxGravity:
		return fmt.Errorf("%w: gravity %v outside [%v, %v]", ErrInvalidSettings, s.Gravity, MinGravity, MaxGravity)
	case s.ShapesPerSecond < MinShapesPerSecond || s.ShapesPerSecond > MaxShapesPerSecond:
		return fmt.Errorf("%w: shapes_per_second %v outside [%v, %v]", ErrInvalidSettings, s.ShapesPerSecond, MinShapesPerSecond, MaxShapesPerSecond)
	case !s.ClickKind.Valid():
		return fmt.Errorf("%w: click kind %v", ErrInvalidSettings, s.ClickKind)
	}
	return nil
}

// SpawnInterval is the wall-clock time between automatic spawns.
func (s *Settings) SpawnInterval() time.Duration {
	return time.Duration(float64(time.Second) / s.ShapesPerSecond)
}

// SpawnDue reports whether at least one SpawnInterval passed since LastSpawn.
func (s *Settings) SpawnDue(now time.Time) bool {
	return now.Sub(s.LastSpawn) >= s.SpawnInterval()
}

// MarkSpawned records a spawn at now.
func (s *Settings) MarkSpawned(now time.Time) {
	s.LastSpawn = now
}

// BoundaryY is the Y past which a falling shape is removed.
func (s *Settings) BoundaryY() float64 {
	return float64(s.Height) + BoundaryMargin
}

func (s *Settings) IncreaseSpawnRate() float64 {
	s.ShapesPerSecond = math.Min(MaxShapesPerSecond, s.ShapesPerSecond+ShapesPerSecondStep)
	return s.ShapesPerSecond
}

func (s *Settings) DecreaseSpawnRate() float64 {
	s.ShapesPerSecond = math.Max(MinShapesPerSecond, s.ShapesPerSecond-ShapesPerSecondStep)
	return s.ShapesPerSecond
}

func (s *Settings) IncreaseGravity() float64 {
	s.Gravity = utils.Clamp(utils.RoundTo(s.Gravity+GravityStep, GravityStep), MinGravity, MaxGravity)
	return s.Gravity
}

func (s *Settings) DecreaseGravity() float64 {
	s.Gravity = utils.Clamp(utils.RoundTo(s.Gravity-GravityStep, GravityStep), MinGravity, MaxGravity)
	return s.Gravity
}

// SpawnRateLabel prints the rate without trailing zeros: "0.5", "1", "1.5".
func (s *Settings) SpawnRateLabel() string {
	return strconv.FormatFloat(s.ShapesPerSecond, 'f', -1, 64)
}

// GravityLabel prints gravity with one decimal.
func (s *Settings) GravityLabel() string {
	return strconv.FormatFloat(s.Gravity, 'f', 1, 64)
}

// ToCanvas maps a point from a view of viewW x viewH (a scaled window or a
// terminal grid) into canvas coordinates.
func (s *Settings) ToCanvas(px, py, viewW, viewH float64) (float64, float64) {
	if viewW <= 0 || viewH <= 0 {
		return px, py
	}
	return px * float64(s.Width) / viewW, py * float64(s.Height) / viewH
}
